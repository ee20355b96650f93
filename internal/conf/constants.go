package conf

// DefaultBucketCount - Number of buckets in the destination index unless configured otherwise, a prime
const DefaultBucketCount int64 = 127

// MaxDestinationLength - Longest destination accepted by default, in bytes
const MaxDestinationLength int = 19

// EntrySize - Longest line expected in a courier file, including the line terminator
const EntrySize int = 50

// DefaultCourierFile - Name of the courier file loaded by the command line tool unless told otherwise
const DefaultCourierFile string = "couriers.txt"

// Djb2Seed - Initial value of the djb2 string hash
const Djb2Seed uint32 = 5381

package schema

// Custom string types for type safety.
type (
	// Health represents the health label of a tree as published by the census.
	Health string

	// StewardBucket represents the binned count of stewardship signs on a tree.
	StewardBucket string

	// OutputMode represents the format of the output.
	OutputMode string

	// SourceBackend represents where raw census rows are read from.
	SourceBackend string
)

// All health labels recognized by the health index.
const (
	PoorHealth Health = "Poor"
	FairHealth Health = "Fair"
	GoodHealth Health = "Good"
)

// All steward buckets recognized by the health index.
const (
	StewardNone      StewardBucket = "None"
	StewardOneTwo    StewardBucket = "1or2"
	StewardThreeFour StewardBucket = "3or4"
	StewardFourPlus  StewardBucket = "4orMore"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All source backends supported.
const (
	SocrataSource    SourceBackend = "socrata" // default
	FileSource       SourceBackend = "file"
	SQLiteSource     SourceBackend = "sqlite"
	MySQLSource      SourceBackend = "mysql"
	PostgreSQLSource SourceBackend = "postgresql"
)

// Census dataset defaults.
const (
	CensusDatasetID    = "uvpi-gqnh"
	CensusDatasetName  = "2015 Street Tree Census - Tree Data"
	DefaultSourceURL   = "https://data.cityofnewyork.us/resource/" + CensusDatasetID + ".json"
	DefaultSourceLimit = 14000
	DefaultSourceTable = "street_trees"
	DefaultSpecies     = "American Beech"
)

// AllHealth lists health labels in ascending order of level.
var AllHealth = []Health{PoorHealth, FairHealth, GoodHealth}

// AllStewardBuckets lists steward buckets in ascending order of level.
var AllStewardBuckets = []StewardBucket{StewardNone, StewardOneTwo, StewardThreeFour, StewardFourPlus}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSourceBackends lists all valid source backends.
var ValidSourceBackends = map[SourceBackend]struct{}{
	SocrataSource:    {},
	FileSource:       {},
	SQLiteSource:     {},
	MySQLSource:      {},
	PostgreSQLSource: {},
}

// IsDatabase reports whether the backend reads from a SQL mirror table.
func (b SourceBackend) IsDatabase() bool {
	switch b {
	case SQLiteSource, MySQLSource, PostgreSQLSource:
		return true
	default:
		return false
	}
}

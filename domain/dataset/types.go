package dataset

import "time"

// Attrition labels and the column that carries them
const (
	AttritionColumn = "Attrition"
	AttritionYes    = "Yes"
	AttritionNo     = "No"
)

// excludedFeatures are identifier or constant columns that are never offered for selection
var excludedFeatures = map[string]bool{
	AttritionColumn:  true,
	"EmployeeNumber": true,
	"EmployeeCount":  true,
	"Over18":         true,
	"StandardHours":  true,
}

// PartitionLabels is the fixed left-to-right display order of partitions
var PartitionLabels = [2]string{AttritionNo, AttritionYes}

// FeatureKind classifies a column as Numeric or Categorical
type FeatureKind string

const (
	KindNumeric     FeatureKind = "numeric"
	KindCategorical FeatureKind = "categorical"
)

// SourceKind tells where a dataset came from
type SourceKind string

const (
	SourceFile   SourceKind = "file"
	SourceSample SourceKind = "sample"
)

// Source identifies the origin of a loaded dataset; Key is the memoization key
type Source struct {
	Kind     SourceKind `json:"kind"`
	Path     string     `json:"path,omitempty"`
	Seed     int64      `json:"seed,omitempty"`
	Key      string     `json:"key"`
	LoadedAt time.Time  `json:"loaded_at"`
}

// NoticeLevel is the severity of a user-visible status notice
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a human-readable status message; Message may contain markdown
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// NormalizationReport counts what Attrition normalization changed
type NormalizationReport struct {
	Rows      int `json:"rows"`
	Converted int `json:"converted"` // numeric 1/0 codes mapped to Yes/No
	Invalid   int `json:"invalid"`   // values coerced to "No"
}

package generator

import "github.com/Behyna/payment-services/txdatagen/internal/model"

// Command carries the parameters of one generation run. A zero RecordCount
// is valid and yields a header-only dataset.
type Command struct {
	RecordCount int64 `validate:"min=0"`
	MaxClientID int64 `validate:"min=1,max=4294967295"`
	MaxAmount   int64 `validate:"min=1,max=4294967295"`
}

// Summary reports what a run actually emitted, per kind.
type Summary struct {
	Total    int64
	ByKind   map[model.Kind]int64
	Header   bool
	BytesOut int64
}

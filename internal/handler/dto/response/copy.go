package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// copyView copies a read model into its response shape by field name.
func copyView(to, from any) error {
	return copier.CopyWithOption(to, from, copyOption)
}

func euros(cents int64) float64 {
	return float64(cents) / 100.0
}

package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/image_service/myErrors"
)

func fptr(v float64) *float64 { return &v }

func TestEditOperations_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ops     EditOperations
		wantErr bool
	}{
		{"空描述符合法", EditOperations{}, false},
		{"正常裁剪", EditOperations{Crop: &CropOperation{X: 0, Y: 0, Width: 100, Height: 100}}, false},
		{"裁剪宽度为零", EditOperations{Crop: &CropOperation{Width: 0, Height: 100}}, true},
		{"裁剪起点为负", EditOperations{Crop: &CropOperation{X: -1, Width: 10, Height: 10}}, true},
		{"亮度下界", EditOperations{Filters: &FilterOperation{Brightness: fptr(0.1)}}, false},
		{"亮度低于下界", EditOperations{Filters: &FilterOperation{Brightness: fptr(0.05)}}, true},
		{"对比度超上界", EditOperations{Filters: &FilterOperation{Contrast: fptr(3.5)}}, true},
		{"饱和度允许为零", EditOperations{Filters: &FilterOperation{Saturation: fptr(0)}}, false},
		{"饱和度为负", EditOperations{Filters: &FilterOperation{Saturation: fptr(-0.1)}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ops.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, myErrors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEditOperations_IsNoop(t *testing.T) {
	assert.True(t, (&EditOperations{}).IsNoop())
	assert.True(t, (&EditOperations{Rotate: 0}).IsNoop())
	assert.True(t, (&EditOperations{Filters: &FilterOperation{}}).IsNoop())
	assert.True(t, (&EditOperations{Filters: &FilterOperation{Brightness: fptr(1), Contrast: fptr(1), Saturation: fptr(1)}}).IsNoop())

	assert.False(t, (&EditOperations{Crop: &CropOperation{Width: 10, Height: 10}}).IsNoop())
	assert.False(t, (&EditOperations{Rotate: 90}).IsNoop())
	assert.False(t, (&EditOperations{Filters: &FilterOperation{Brightness: fptr(1.2)}}).IsNoop())
}

package service

import (
	"errors"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/image_service/models/dto"
	"github.com/Xushengqwer/image_service/myErrors"
)

func floatPtr(v float64) *float64 { return &v }

func TestApplyEditOperations_Crop(t *testing.T) {
	src := imaging.New(200, 100, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	t.Run("正常裁剪", func(t *testing.T) {
		out, err := ApplyEditOperations(src, &dto.EditOperations{
			Crop: &dto.CropOperation{X: 10, Y: 10, Width: 50, Height: 40},
		})
		require.NoError(t, err)
		assert.Equal(t, 50, out.Bounds().Dx())
		assert.Equal(t, 40, out.Bounds().Dy())
	})

	t.Run("越界部分被钳制到图内", func(t *testing.T) {
		out, err := ApplyEditOperations(src, &dto.EditOperations{
			Crop: &dto.CropOperation{X: 150, Y: 50, Width: 500, Height: 500},
		})
		require.NoError(t, err)
		assert.Equal(t, 50, out.Bounds().Dx())
		assert.Equal(t, 50, out.Bounds().Dy())
	})

	t.Run("完全越界报非法输入", func(t *testing.T) {
		_, err := ApplyEditOperations(src, &dto.EditOperations{
			Crop: &dto.CropOperation{X: 300, Y: 0, Width: 10, Height: 10},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, myErrors.ErrInvalidInput))
	})
}

func TestApplyEditOperations_Rotate(t *testing.T) {
	src := imaging.New(200, 100, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	out, err := ApplyEditOperations(src, &dto.EditOperations{Rotate: 90})
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 200, out.Bounds().Dy())
}

func TestApplyEditOperations_Filters(t *testing.T) {
	src := imaging.New(10, 10, color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	t.Run("提高亮度让像素变亮", func(t *testing.T) {
		out, err := ApplyEditOperations(src, &dto.EditOperations{
			Filters: &dto.FilterOperation{Brightness: floatPtr(1.5)},
		})
		require.NoError(t, err)
		r, _, _, _ := out.At(5, 5).RGBA()
		origR, _, _, _ := src.At(5, 5).RGBA()
		assert.Greater(t, r, origR)
	})

	t.Run("倍率为 1 不改变像素", func(t *testing.T) {
		out, err := ApplyEditOperations(src, &dto.EditOperations{
			Filters: &dto.FilterOperation{
				Brightness: floatPtr(1),
				Contrast:   floatPtr(1),
				Saturation: floatPtr(1),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, src.At(5, 5), out.At(5, 5))
	})
}

func TestApplyEditOperations_Chained(t *testing.T) {
	src := imaging.New(300, 200, color.NRGBA{R: 128, G: 64, B: 32, A: 255})

	out, err := ApplyEditOperations(src, &dto.EditOperations{
		Crop:    &dto.CropOperation{X: 0, Y: 0, Width: 100, Height: 100},
		Rotate:  90,
		Filters: &dto.FilterOperation{Contrast: floatPtr(1.2)},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 100, out.Bounds().Dy())
}

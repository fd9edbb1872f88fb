package dto

import (
	"fmt"

	"github.com/Xushengqwer/image_service/myErrors"
)

// EditImageRequest 编辑图片的请求体。
type EditImageRequest struct {
	Operations *EditOperations `json:"operations" binding:"required"`
}

// EditOperations 编辑描述符：最多三段相互独立的操作。
// - 取代原来松散的 JSON 体，已知形状 + 显式校验。
// - 指针区分"未提供"与零值；Rotate 为 0 视为未提供。
// - 固定执行顺序: 裁剪 -> 旋转 -> 亮度/对比度/饱和度。
type EditOperations struct {
	Crop    *CropOperation   `json:"crop,omitempty"`
	Rotate  float64          `json:"rotate,omitempty"` // 角度，逆时针
	Filters *FilterOperation `json:"filters,omitempty"`
}

// CropOperation 裁剪区域，基于原图坐标系。
// - 非负但越界的坐标在执行时被钳制到图内，不报错。
type CropOperation struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FilterOperation 滤镜参数，均为倍率，1 表示不变。
type FilterOperation struct {
	Brightness *float64 `json:"brightness,omitempty"` // [0.1, 3]
	Contrast   *float64 `json:"contrast,omitempty"`   // [0.1, 3]
	Saturation *float64 `json:"saturation,omitempty"` // [0, 3]
}

// Validate 校验各段参数的取值范围。
func (ops *EditOperations) Validate() error {
	if ops.Crop != nil {
		if ops.Crop.Width <= 0 || ops.Crop.Height <= 0 {
			return fmt.Errorf("%w: 裁剪宽高必须大于 0", myErrors.ErrInvalidInput)
		}
		if ops.Crop.X < 0 || ops.Crop.Y < 0 {
			return fmt.Errorf("%w: 裁剪起点不能为负", myErrors.ErrInvalidInput)
		}
	}
	if ops.Filters != nil {
		if b := ops.Filters.Brightness; b != nil && (*b < 0.1 || *b > 3) {
			return fmt.Errorf("%w: 亮度参数超出范围 (0.1-3)", myErrors.ErrInvalidInput)
		}
		if ct := ops.Filters.Contrast; ct != nil && (*ct < 0.1 || *ct > 3) {
			return fmt.Errorf("%w: 对比度参数超出范围 (0.1-3)", myErrors.ErrInvalidInput)
		}
		if s := ops.Filters.Saturation; s != nil && (*s < 0 || *s > 3) {
			return fmt.Errorf("%w: 饱和度参数超出范围 (0-3)", myErrors.ErrInvalidInput)
		}
	}
	return nil
}

// IsNoop 判断整个描述符是否不产生任何变换。
// - 全部为空、旋转 0 度、滤镜全为 1 时为真；此时不产出编辑文件，记录保持不变。
func (ops *EditOperations) IsNoop() bool {
	if ops.Crop != nil {
		return false
	}
	if ops.Rotate != 0 {
		return false
	}
	if ops.Filters == nil {
		return true
	}
	isOne := func(v *float64) bool { return v == nil || *v == 1 }
	return isOne(ops.Filters.Brightness) && isOne(ops.Filters.Contrast) && isOne(ops.Filters.Saturation)
}

package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarouselConfigRequest_Binding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"常规请求", `{"name":"客厅电视","imageIds":[1,2,3],"intervalSeconds":8}`, false},
		{"空图片列表合法", `{"name":"空轮播","imageIds":[]}`, false},
		{"缺省图片列表合法", `{"name":"空轮播"}`, false},
		{"缺少名称", `{"imageIds":[1]}`, true},
		{"间隔为零走缺省值", `{"name":"x","imageIds":[1],"intervalSeconds":0}`, false},
		{"间隔为负不合法", `{"name":"x","imageIds":[1],"intervalSeconds":-1}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CarouselConfigRequest
			err := binding.JSON.BindBody([]byte(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCarouselConfigRequest_ValidImageIDs(t *testing.T) {
	req := CarouselConfigRequest{ImageIDs: []int64{3, 0, -1, 1, 3}}
	assert.Equal(t, []uint64{3, 1, 3}, req.ValidImageIDs())

	empty := CarouselConfigRequest{}
	require.NotNil(t, empty.ValidImageIDs())
	assert.Empty(t, empty.ValidImageIDs())
}

func TestCarouselConfigRequest_Interval(t *testing.T) {
	assert.Equal(t, 5, (&CarouselConfigRequest{}).Interval())
	assert.Equal(t, 8, (&CarouselConfigRequest{IntervalSeconds: 8}).Interval())
}

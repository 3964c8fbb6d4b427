package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		city     string
		province string
		region   string
	}{
		{"上海", "上海市", "华东地区"},
		{"深圳", "广东省", "华南地区"},
		{"北京", "北京市", "华北地区"},
		{"成都", "四川省", "西南地区"},
		{"西安", "陕西省", "西北地区"},
		{"哈尔滨", "黑龙江省", "东北地区"},
		{"武汉", "湖北省", "华中地区"},
		{"乌鲁木齐", "新疆维吾尔自治区", "西北地区"},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			loc, ok := Resolve(tt.city)
			require.True(t, ok)
			assert.Equal(t, tt.city, loc.City)
			assert.Equal(t, tt.province, loc.Province)
			assert.Equal(t, tt.region, loc.Region)
		})
	}
}

func TestResolveUnknownCity(t *testing.T) {
	_, ok := Resolve("不存在的城市")
	assert.False(t, ok)

	_, ok = Resolve("")
	assert.False(t, ok)
}

func TestEveryCityHasProvinceAndRegion(t *testing.T) {
	for _, city := range AllCities() {
		loc, ok := Resolve(city)
		require.True(t, ok, "city %s", city)
		assert.NotEmpty(t, loc.Province, "city %s", city)
		assert.NotEmpty(t, loc.Region, "city %s", city)
	}
}

func TestProvinceCitiesGrouping(t *testing.T) {
	grouped := ProvinceCities()

	assert.Contains(t, grouped["广东省"], "广州")
	assert.Contains(t, grouped["广东省"], "深圳")
	assert.Contains(t, grouped["上海市"], "上海")

	total := 0
	for _, cities := range grouped {
		total += len(cities)
	}
	assert.Equal(t, len(AllCities()), total)
}

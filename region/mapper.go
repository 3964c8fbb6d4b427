package region

import "sort"

// 经济区域代码
const (
	EastChina      = "east_china"
	SouthChina     = "south_china"
	NorthChina     = "north_china"
	SouthwestChina = "southwest_china"
	NorthwestChina = "northwest_china"
	NortheastChina = "northeast_china"
	CentralChina   = "central_china"
)

// cityToProvince 城市到省份代码的映射
var cityToProvince = map[string]string{
	// 直辖市
	"上海": "shanghai", "北京": "beijing", "天津": "tianjin", "重庆": "chongqing",
	// 广东省
	"广州": "guangdong", "深圳": "guangdong", "珠海": "guangdong", "佛山": "guangdong",
	"东莞": "guangdong", "中山": "guangdong", "惠州": "guangdong", "汕头": "guangdong",
	// 江苏省
	"南京": "jiangsu", "苏州": "jiangsu", "无锡": "jiangsu",
	// 浙江省
	"杭州": "zhejiang", "宁波": "zhejiang", "温州": "zhejiang",
	// 山东省
	"济南": "shandong", "青岛": "shandong",
	// 福建省
	"福州": "fujian", "厦门": "fujian",
	// 江西省
	"南昌": "jiangxi",
	// 安徽省
	"合肥": "anhui",
	// 河南省
	"郑州": "henan", "洛阳": "henan", "开封": "henan", "新乡": "henan",
	// 湖北省
	"武汉": "hubei",
	// 湖南省
	"长沙": "hunan", "株洲": "hunan", "湘潭": "hunan", "岳阳": "hunan",
	// 广西壮族自治区
	"南宁": "guangxi", "桂林": "guangxi",
	// 海南省
	"海口": "hainan", "三亚": "hainan",
	// 四川省
	"成都": "sichuan", "绵阳": "sichuan", "德阳": "sichuan", "宜宾": "sichuan",
	// 云南省
	"昆明": "yunnan", "大理": "yunnan",
	// 贵州省
	"贵阳": "guizhou",
	// 西藏自治区
	"拉萨": "tibet",
	// 陕西省
	"西安": "shaanxi", "咸阳": "shaanxi", "宝鸡": "shaanxi", "榆林": "shaanxi",
	// 甘肃省
	"兰州": "gansu",
	// 青海省
	"西宁": "qinghai",
	// 宁夏回族自治区
	"银川": "ningxia",
	// 新疆维吾尔自治区
	"乌鲁木齐": "xinjiang",
	// 河北省
	"石家庄": "hebei", "唐山": "hebei", "秦皇岛": "hebei", "保定": "hebei",
	// 山西省
	"太原": "shanxi",
	// 内蒙古自治区
	"呼和浩特": "inner_mongolia", "包头": "inner_mongolia",
	// 辽宁省
	"沈阳": "liaoning", "大连": "liaoning", "鞍山": "liaoning", "抚顺": "liaoning",
	// 吉林省
	"长春": "jilin", "吉林": "jilin",
	// 黑龙江省
	"哈尔滨": "heilongjiang", "齐齐哈尔": "heilongjiang",
}

// provinceToRegion 省份代码到经济区域的映射
var provinceToRegion = map[string]string{
	"shanghai": EastChina, "jiangsu": EastChina, "zhejiang": EastChina,
	"shandong": EastChina, "fujian": EastChina, "jiangxi": EastChina, "anhui": EastChina,

	"guangdong": SouthChina, "guangxi": SouthChina, "hainan": SouthChina,

	"beijing": NorthChina, "tianjin": NorthChina, "hebei": NorthChina,
	"shanxi": NorthChina, "inner_mongolia": NorthChina,

	"chongqing": SouthwestChina, "sichuan": SouthwestChina, "yunnan": SouthwestChina,
	"guizhou": SouthwestChina, "tibet": SouthwestChina,

	"shaanxi": NorthwestChina, "gansu": NorthwestChina, "qinghai": NorthwestChina,
	"ningxia": NorthwestChina, "xinjiang": NorthwestChina,

	"liaoning": NortheastChina, "jilin": NortheastChina, "heilongjiang": NortheastChina,

	"henan": CentralChina, "hubei": CentralChina, "hunan": CentralChina,
}

// regionNames 区域代码到中文名称的映射
var regionNames = map[string]string{
	EastChina:      "华东地区",
	SouthChina:     "华南地区",
	NorthChina:     "华北地区",
	SouthwestChina: "西南地区",
	NorthwestChina: "西北地区",
	NortheastChina: "东北地区",
	CentralChina:   "华中地区",
}

// provinceNames 省份代码到中文名称的映射
var provinceNames = map[string]string{
	"shanghai": "上海市", "beijing": "北京市", "tianjin": "天津市", "chongqing": "重庆市",
	"guangdong": "广东省", "jiangsu": "江苏省", "zhejiang": "浙江省", "shandong": "山东省",
	"fujian": "福建省", "jiangxi": "江西省", "anhui": "安徽省", "henan": "河南省",
	"hubei": "湖北省", "hunan": "湖南省", "guangxi": "广西壮族自治区", "hainan": "海南省",
	"sichuan": "四川省", "yunnan": "云南省", "guizhou": "贵州省", "tibet": "西藏自治区",
	"shaanxi": "陕西省", "gansu": "甘肃省", "qinghai": "青海省", "ningxia": "宁夏回族自治区",
	"xinjiang": "新疆维吾尔自治区", "hebei": "河北省", "shanxi": "山西省",
	"inner_mongolia": "内蒙古自治区", "liaoning": "辽宁省", "jilin": "吉林省",
	"heilongjiang": "黑龙江省",
}

// Location 城市的完整位置信息
type Location struct {
	City     string // 城市名
	Province string // 省份中文名
	Region   string // 经济区域中文名
}

// ProvinceByCity 返回城市所属省份代码，未收录城市返回 ("", false)
func ProvinceByCity(city string) (string, bool) {
	code, ok := cityToProvince[city]
	return code, ok
}

// Resolve 解析城市的完整位置信息（城市/省份/区域中文名）
func Resolve(city string) (Location, bool) {
	provinceCode, ok := cityToProvince[city]
	if !ok {
		return Location{}, false
	}
	loc := Location{
		City:     city,
		Province: provinceNames[provinceCode],
	}
	if regionCode, ok := provinceToRegion[provinceCode]; ok {
		loc.Region = regionNames[regionCode]
	}
	return loc, true
}

// AllCities 返回全部已收录城市，排序保证输出稳定
func AllCities() []string {
	cities := make([]string, 0, len(cityToProvince))
	for city := range cityToProvince {
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// ProvinceCities 按省份中文名分组返回城市列表
func ProvinceCities() map[string][]string {
	result := make(map[string][]string)
	for city, provinceCode := range cityToProvince {
		name := provinceNames[provinceCode]
		result[name] = append(result[name], city)
	}
	for _, cities := range result {
		sort.Strings(cities)
	}
	return result
}

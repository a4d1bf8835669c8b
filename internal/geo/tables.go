package geo

// Static lookup tables. These are plain read-only data, deliberately not
// wrapped in any dispatch machinery: the mappings are small, finite, and
// change on a census timescale.

// usAbbrToName maps USPS two-letter state abbreviations to the full state
// name used as the "name" property of the US states vector data.
var usAbbrToName = map[string]string{
	"AL": "Alabama",
	"AK": "Alaska",
	"AZ": "Arizona",
	"AR": "Arkansas",
	"CA": "California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"DE": "Delaware",
	"DC": "District of Columbia",
	"FL": "Florida",
	"GA": "Georgia",
	"HI": "Hawaii",
	"ID": "Idaho",
	"IL": "Illinois",
	"IN": "Indiana",
	"IA": "Iowa",
	"KS": "Kansas",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"ME": "Maine",
	"MD": "Maryland",
	"MA": "Massachusetts",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MS": "Mississippi",
	"MO": "Missouri",
	"MT": "Montana",
	"NE": "Nebraska",
	"NV": "Nevada",
	"NH": "New Hampshire",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NY": "New York",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"PA": "Pennsylvania",
	"RI": "Rhode Island",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"UT": "Utah",
	"VT": "Vermont",
	"VA": "Virginia",
	"WA": "Washington",
	"WV": "West Virginia",
	"WI": "Wisconsin",
	"WY": "Wyoming",
}

// cnEnToZh maps cleaned English names of China's province-level divisions to
// the Chinese names carried by the CN provinces vector data. Both scripts are
// offered as candidate keys because geocoder output and vector data disagree
// on language.
var cnEnToZh = map[string]string{
	"Beijing":        "北京市",
	"Tianjin":        "天津市",
	"Shanghai":       "上海市",
	"Chongqing":      "重庆市",
	"Hebei":          "河北省",
	"Shanxi":         "山西省",
	"Liaoning":       "辽宁省",
	"Jilin":          "吉林省",
	"Heilongjiang":   "黑龙江省",
	"Jiangsu":        "江苏省",
	"Zhejiang":       "浙江省",
	"Anhui":          "安徽省",
	"Fujian":         "福建省",
	"Jiangxi":        "江西省",
	"Shandong":       "山东省",
	"Henan":          "河南省",
	"Hubei":          "湖北省",
	"Hunan":          "湖南省",
	"Guangdong":      "广东省",
	"Hainan":         "海南省",
	"Sichuan":        "四川省",
	"Guizhou":        "贵州省",
	"Yunnan":         "云南省",
	"Shaanxi":        "陕西省",
	"Gansu":          "甘肃省",
	"Qinghai":        "青海省",
	"Taiwan":         "台湾省",
	"Inner Mongolia": "内蒙古自治区",
	"Guangxi":        "广西壮族自治区",
	"Tibet":          "西藏自治区",
	"Xizang":         "西藏自治区",
	"Ningxia":        "宁夏回族自治区",
	"Xinjiang":       "新疆维吾尔自治区",
	"Hong Kong":      "香港特别行政区",
	"Macau":          "澳门特别行政区",
	"Macao":          "澳门特别行政区",
}

package evolution

// 定义了进化(evolution)条目的数据模型，每个详情页对应一条记录

// 单个等级的升级内容
type Upgrade struct {
	Step        int            `json:"step"`        // 等级序号，取自"Level N"标题
	Description []string       `json:"description"` // 升级描述，每个li一条
	Effects     map[string]int `json:"effects"`     // 预留字段，始终为空
}

// 一条进化记录，字段顺序即输出json中的键顺序
type Record struct {
	UnlockDate          string            `json:"unlock_date"`
	ExpiresOn           string            `json:"expires_on"`
	Cost                string            `json:"cost"`
	Requirements        map[string]string `json:"requirements"`
	TotalUpgrades       map[string]string `json:"total_upgrades"`
	Challenges          []string          `json:"challenges"`
	Upgrades            []Upgrade         `json:"upgrades"`
	NewPositions        []string          `json:"new_positions"`
	PlaystylesAdded     []string          `json:"playstyles_added"`
	PlaystylesPlusAdded []string          `json:"playstyles_plus_added"`
	FinalBonus          map[string]string `json:"final_bonus"`
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	URL                 string            `json:"url"`
}

/*
输入一个详情页url，输出一条空记录

该方法用于创建一条所有集合字段都已初始化的记录，保证序列化后每个键都存在且不为null
*/
func New(url string) *Record {
	return &Record{
		Requirements:        map[string]string{},
		TotalUpgrades:       map[string]string{},
		Challenges:          []string{},
		Upgrades:            []Upgrade{},
		NewPositions:        []string{},
		PlaystylesAdded:     []string{},
		PlaystylesPlusAdded: []string{},
		FinalBonus:          map[string]string{},
		URL:                 url,
	}
}

// 创建一个等级升级条目，description为nil时替换为空切片
func NewUpgrade(step int, description []string) Upgrade {
	if description == nil {
		description = []string{}
	}
	return Upgrade{
		Step:        step,
		Description: description,
		Effects:     map[string]int{},
	}
}

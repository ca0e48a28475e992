package futgg

// 将所有字段抽取规则作用于同一份详情页文档，合并成一条进化记录

import (
	"github.com/dszqbsm/evocrawler/evolution"
	"go.uber.org/zap"
)

// 字段规则：对页面执行抽取并把结果写入记录，返回目标结构是否存在
type FieldRule struct {
	Name  string
	Apply func(p *Page, rec *evolution.Record) bool
}

func newRule[T any](name string, extract func(*Page) Field[T], assign func(*evolution.Record, T)) FieldRule {
	return FieldRule{
		Name: name,
		Apply: func(p *Page, rec *evolution.Record) bool {
			f := extract(p)
			assign(rec, f.Value())
			return f.Found()
		},
	}
}

// 详情页的全部字段规则，按输出记录的字段顺序排列
var Rules = []FieldRule{
	newRule("dates", ExtractDates, func(r *evolution.Record, v DatePair) {
		r.UnlockDate, r.ExpiresOn = v.Unlock, v.Expires
	}),
	newRule("cost", ExtractCost, func(r *evolution.Record, v string) { r.Cost = v }),
	newRule("requirements", ExtractRequirements, func(r *evolution.Record, v map[string]string) { r.Requirements = v }),
	newRule("total_upgrades", ExtractTotalUpgrades, func(r *evolution.Record, v map[string]string) { r.TotalUpgrades = v }),
	newRule("challenges", ExtractChallenges, func(r *evolution.Record, v []string) { r.Challenges = v }),
	newRule("upgrades", ExtractUpgrades, func(r *evolution.Record, v []evolution.Upgrade) { r.Upgrades = v }),
	newRule("id", ExtractID, func(r *evolution.Record, v string) { r.ID = v }),
	newRule("name", ExtractName, func(r *evolution.Record, v string) { r.Name = v }),
}

/*
输入详情页url、响应内容和日志器，输出一条进化记录和一个错误

该方法只解析一次html，依次执行所有字段规则；退化为默认值的字段以debug级别日志报告，不影响输出
*/
func Assemble(url string, body []byte, logger *zap.Logger) (*evolution.Record, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	page, err := NewPage(url, body)
	if err != nil {
		return nil, err
	}

	rec := evolution.New(url)
	for _, rule := range Rules {
		if !rule.Apply(page, rec) {
			logger.Debug("field defaulted",
				zap.String("field", rule.Name),
				zap.String("url", url),
			)
		}
	}
	return rec, nil
}

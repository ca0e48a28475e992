package futgg

// 解析进化列表页，提取所有进化详情页的链接

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
)

// 详情页链接的路径前缀
const EvolutionsPath = "/evolutions/"

var (
	anchorExpr = xpath.MustCompile("//a[@href]")
	digitRe    = regexp.MustCompile(`\d`)
)

/*
输入列表页的html和站点根地址，输出去重后的详情页完整url列表和一个错误

该方法用于扫描所有带href的a标签，保留以/evolutions/开头、去掉查询串后仍含有数字的链接(不含数字的是分类或索引页)，拼接站点根地址，按首次出现的顺序去重返回
*/
func CollectLinks(body []byte, baseURL string) ([]string, error) {
	doc, err := htmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse listing page failed: %w", err)
	}

	base := strings.TrimRight(baseURL, "/")
	seen := make(map[string]struct{})
	urls := make([]string, 0)

	for _, a := range htmlquery.QuerySelectorAll(doc, anchorExpr) {
		href := htmlquery.SelectAttr(a, "href")
		if !strings.HasPrefix(href, EvolutionsPath) {
			continue
		}
		// 先去掉查询串再判断数字，避免 /evolutions/?only_expired=1 这类索引链接混入
		href, _, _ = strings.Cut(href, "?")
		if !digitRe.MatchString(href) {
			continue
		}

		u := base + href
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	return urls, nil
}

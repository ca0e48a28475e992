package futgg

// 详情页的字段抽取规则，每条规则都是无状态的，目标结构缺失时返回该字段的空默认值

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/dszqbsm/evocrawler/evolution"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// 已解析的详情页，所有抽取规则共享同一份文档
type Page struct {
	URL string
	Doc *goquery.Document
}

// 解析详情页html
func NewPage(url string, body []byte) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse detail page %s failed: %w", url, err)
	}
	return &Page{URL: url, Doc: doc}, nil
}

var (
	timeMarkerSel  = cascadia.MustCompile("time.js-time-diff-app")
	coinImgSel     = cascadia.MustCompile(`img[src*="coins.png"]`)
	sectionHeadSel = cascadia.MustCompile("h2, h3")
	levelHeadSel   = cascadia.MustCompile("h2")
	titleSel       = cascadia.MustCompile("h1")
	listSel        = cascadia.MustCompile("ul")
	listItemSel    = cascadia.MustCompile("li")
	spanSel        = cascadia.MustCompile("span")

	requirementsRe  = regexp.MustCompile(`(?i)Requirements`)
	totalUpgradesRe = regexp.MustCompile(`(?i)Total Upgrades`)
	challengesRe    = regexp.MustCompile(`(?i)Challenges`)
	levelRe         = regexp.MustCompile(`Level (\d+)`)

	isList      = isElement(atom.Ul)
	isContainer = isElement(atom.Div, atom.Section)
)

// datetime属性可能出现的格式，time.Parse在秒之后会自动接受小数部分
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// 解锁与过期日期，格式YYYY-MM-DD，无法解析时为空串
type DatePair struct {
	Unlock  string
	Expires string
}

/*
输入一个详情页，输出解锁和过期日期

该方法查找带js-time-diff-app类的time标签，至少需要两个，第一个为解锁日期，第二个为过期日期；少于两个时两个日期均为空，单个日期解析失败只影响该日期
*/
func ExtractDates(p *Page) Field[DatePair] {
	times := p.Doc.FindMatcher(timeMarkerSel)
	if times.Length() < 2 {
		return Default(DatePair{})
	}

	unlock, unlockOK := parseDate(times.Eq(0))
	expires, expiresOK := parseDate(times.Eq(1))
	pair := DatePair{Unlock: unlock, Expires: expires}
	if !unlockOK || !expiresOK {
		return Default(pair)
	}
	return Some(pair)
}

// 读取datetime属性并规范为YYYY-MM-DD，日期取时间戳自身时区下的日期
func parseDate(s *goquery.Selection) (string, bool) {
	v, ok := s.Attr("datetime")
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(time.DateOnly), true
		}
	}
	return "", false
}

/*
输入一个详情页，输出花费

该方法查找src中包含coins.png的图片，取其后第一个非空白文本并去除首尾空白；图片与数值之间只有换行或空格时会越过这些空白文本，而不是返回空串
*/
func ExtractCost(p *Page) Field[string] {
	img := p.Doc.FindMatcher(coinImgSel).First()
	if img.Length() == 0 {
		return Default("")
	}
	text := nextMatching(img.Get(0), isNonBlankText)
	if text == nil {
		return Default("")
	}
	return Some(strings.TrimSpace(text.Data))
}

func ExtractRequirements(p *Page) Field[map[string]string] {
	return labeledList(p, requirementsRe)
}

func ExtractTotalUpgrades(p *Page) Field[map[string]string] {
	return labeledList(p, totalUpgradesRe)
}

/*
输入一个详情页和小节标题的正则，输出标签到值的映射

该方法定位标题后的第一个ul，对每个至少包含两个span的li，第一个span作键、第二个span作值；重复的键以后出现的为准
*/
func labeledList(p *Page, section *regexp.Regexp) Field[map[string]string] {
	pairs := map[string]string{}
	list := sectionList(p, section)
	if list == nil {
		return Default(pairs)
	}

	for _, li := range cascadia.QueryAll(list, listItemSel) {
		spans := cascadia.QueryAll(li, spanSel)
		if len(spans) < 2 {
			continue
		}
		pairs[trimmedText(spans[0])] = trimmedText(spans[1])
	}
	return Some(pairs)
}

// 挑战列表，每个li的文本为一项，保持文档顺序
func ExtractChallenges(p *Page) Field[[]string] {
	challenges := []string{}
	list := sectionList(p, challengesRe)
	if list == nil {
		return Default(challenges)
	}

	for _, li := range cascadia.QueryAll(list, listItemSel) {
		challenges = append(challenges, trimmedText(li))
	}
	return Some(challenges)
}

// 第一个文本匹配section的h2/h3标题之后的第一个ul
func sectionList(p *Page, section *regexp.Regexp) *html.Node {
	var heading *html.Node
	p.Doc.FindMatcher(sectionHeadSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if section.MatchString(s.Text()) {
			heading = s.Get(0)
			return false
		}
		return true
	})
	if heading == nil {
		return nil
	}
	return nextMatching(heading, isList)
}

/*
输入一个详情页，输出各等级的升级内容

该方法按文档顺序扫描文本形如"Level N"的h2标题(区分大小写，"level 2"不算)，不按等级重新排序；对每个标题向后查找最近的、文本含有Upgrades的div或section，收集其中第一个ul下各li的文本；找不到时该等级的描述为空但仍保留
*/
func ExtractUpgrades(p *Page) Field[[]evolution.Upgrade] {
	upgrades := []evolution.Upgrade{}
	p.Doc.FindMatcher(levelHeadSel).Each(func(_ int, h *goquery.Selection) {
		m := levelRe.FindStringSubmatch(h.Text())
		if m == nil {
			return
		}
		step, err := strconv.Atoi(m[1])
		if err != nil {
			return
		}
		upgrades = append(upgrades, evolution.NewUpgrade(step, levelDescription(h.Get(0))))
	})
	if len(upgrades) == 0 {
		return Default(upgrades)
	}
	return Some(upgrades)
}

func levelDescription(heading *html.Node) []string {
	description := []string{}
	container := nextMatching(heading, func(n *html.Node) bool {
		return isContainer(n) && strings.Contains(rawText(n), "Upgrades")
	})
	if container == nil {
		return description
	}
	list := cascadia.Query(container, listSel)
	if list == nil {
		return description
	}
	for _, li := range cascadia.QueryAll(list, listItemSel) {
		description = append(description, strippedText(li, " "))
	}
	return description
}

// id取url去掉首尾斜杠后的最后一段
func ExtractID(p *Page) Field[string] {
	trimmed := strings.Trim(p.URL, "/")
	id := trimmed[strings.LastIndex(trimmed, "/")+1:]
	if id == "" {
		return Default("")
	}
	return Some(id)
}

// 名称优先取h1，没有h1时取第一个文本非空的h2/h3
func ExtractName(p *Page) Field[string] {
	if h1 := p.Doc.FindMatcher(titleSel).First(); h1.Length() > 0 {
		if name := trimmedText(h1.Get(0)); name != "" {
			return Some(name)
		}
		return Default("")
	}

	name := ""
	p.Doc.FindMatcher(sectionHeadSel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name = trimmedText(s.Get(0))
		return name == ""
	})
	if name == "" {
		return Default("")
	}
	return Some(name)
}

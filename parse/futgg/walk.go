package futgg

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// 邻近搜索的上限：从锚点向后最多检查的节点数，超过即视为未找到
const searchHorizon = 2000

/*
输入一个锚点节点和一个匹配函数，输出第一个匹配的节点

该方法按文档顺序(先序遍历，先进入锚点自身的子孙，再到后续节点)查找锚点之后第一个满足match的节点，最多检查searchHorizon个节点，找不到返回nil
*/
func nextMatching(anchor *html.Node, match func(*html.Node) bool) *html.Node {
	visited := 0
	for n := following(anchor); n != nil; n = following(n) {
		visited++
		if visited > searchHorizon {
			return nil
		}
		if match(n) {
			return n
		}
	}
	return nil
}

// 先序遍历中n的下一个节点
func following(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

// 匹配给定标签之一的元素节点
func isElement(atoms ...atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, a := range atoms {
			if n.DataAtom == a {
				return true
			}
		}
		return false
	}
}

// 去除首尾空白后非空的文本节点
func isNonBlankText(n *html.Node) bool {
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) != ""
}

/*
输入一个节点和分隔符，输出节点的文本

收集节点下所有文本片段，每段去除首尾空白并丢弃空片段，再用sep拼接；script和style中的内容不计入
*/
func strippedText(n *html.Node, sep string) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, sep)
}

// 节点下全部文本的原样拼接
func rawText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// 节点全部文本去除首尾空白
func trimmedText(n *html.Node) string {
	return strings.TrimSpace(rawText(n))
}

package proxy

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
)

// 与http.Transport.Proxy签名一致的代理选择函数
type ProxyFunc func(*http.Request) (*url.URL, error)

type roundRobinSwitcher struct {
	proxyURLs []*url.URL
	index     atomic.Uint32
}

/*
输入一个http.Request，输出一个url.URL和一个error。

该方法按轮询顺序为每个请求挑选一个代理服务器，并发安全
*/
func (r *roundRobinSwitcher) GetProxy(*http.Request) (*url.URL, error) {
	if len(r.proxyURLs) == 0 {
		return nil, errors.New("empty proxy urls")
	}
	index := r.index.Add(1) - 1
	return r.proxyURLs[index%uint32(len(r.proxyURLs))], nil
}

/*
输入一个代理服务器地址列表，输出一个代理服务器切换函数和一个error。

列表为空或任一地址无法解析时返回错误
*/
func RoundRobinProxySwitcher(proxyURLs ...string) (ProxyFunc, error) {
	if len(proxyURLs) < 1 {
		return nil, errors.New("proxy url list is empty")
	}
	urls := make([]*url.URL, len(proxyURLs))
	for i, u := range proxyURLs {
		parsed, err := url.Parse(u)
		if err != nil {
			return nil, fmt.Errorf("parse proxy url %q: %w", u, err)
		}
		urls[i] = parsed
	}
	return (&roundRobinSwitcher{proxyURLs: urls}).GetProxy, nil
}

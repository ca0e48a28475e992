package collect

// 采集器：负责发起HTTP GET请求，检查状态码，并将响应内容统一转换为UTF-8

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/dszqbsm/evocrawler/proxy"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type Fetcher interface {
	/*
	   输入一个上下文和url，输出UTF-8编码的响应内容和一个错误

	   状态码不在2xx范围内时返回*FetchError
	*/
	Get(ctx context.Context, url string) ([]byte, error)
}

// 请求返回了非成功状态码
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed: error status code:%d", e.URL, e.StatusCode)
}

// 普通的HTTP采集器，默认不附加任何自定义请求头
type BaseFetch struct {
	Timeout   time.Duration // 为0时不设置超时
	Cookie    string
	UserAgent string
	Proxy     proxy.ProxyFunc
	Logger    *zap.Logger

	once   sync.Once
	client *http.Client
}

// 多个工作协程共享同一个采集器，http.Client只初始化一次
func (b *BaseFetch) httpClient() *http.Client {
	b.once.Do(func() {
		b.client = &http.Client{Timeout: b.Timeout}
		if b.Proxy != nil {
			// 克隆默认Transport，避免修改全局的http.DefaultTransport
			transport := http.DefaultTransport.(*http.Transport).Clone()
			transport.Proxy = b.Proxy
			b.client.Transport = transport
		}
	})
	return b.client
}

/*
输入一个上下文和url，输出响应内容和一个错误

该方法用于发送HTTP GET请求，若响应状态码不为2xx则返回*FetchError，否则探测响应内容的编码并转换为UTF-8后返回
*/
func (b *BaseFetch) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get url failed:%w", err)
	}
	if len(b.Cookie) > 0 {
		req.Header.Set("Cookie", b.Cookie)
	}
	if len(b.UserAgent) > 0 {
		req.Header.Set("User-Agent", b.UserAgent)
	}

	resp, err := b.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 读完响应体以便连接复用
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	bodyReader := bufio.NewReader(resp.Body)
	e := b.determineEncoding(bodyReader, resp.Header.Get("Content-Type"))
	utf8Reader := transform.NewReader(bodyReader, e.NewDecoder())

	return io.ReadAll(utf8Reader)
}

func (b *BaseFetch) determineEncoding(r *bufio.Reader, contentType string) encoding.Encoding {
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return DeterminEncoding(r, contentType, logger)
}

/*
输入一个带缓冲的读取器、Content-Type和日志器，输出探测到的编码

读取前1024个字节，结合Content-Type和html中的meta声明探测编码，探测失败时按UTF-8处理
*/
func DeterminEncoding(r *bufio.Reader, contentType string, logger *zap.Logger) encoding.Encoding {
	bytes, err := r.Peek(1024)

	// 响应不足1024字节时Peek返回io.EOF，已读到的内容仍可用于探测
	if err != nil && err != io.EOF {
		logger.Error("fetch failed", zap.Error(err))

		return unicode.UTF8
	}

	e, _, _ := charset.DetermineEncoding(bytes, contentType)

	return e
}

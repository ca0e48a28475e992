package engine

// 爬虫引擎：抓取列表页收集详情页链接，逐个抓取并组装记录，最后统一交给存储器写出

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dszqbsm/evocrawler/collect"
	"github.com/dszqbsm/evocrawler/evolution"
	"github.com/dszqbsm/evocrawler/parse/futgg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// 爬虫实例，管理整个爬取流程
type Crawler struct {
	options
}

// 创建并初始化一个Crawler爬虫实例，通过传入不同的配置选项，可以灵活配置爬虫的行为
func NewEngine(opts ...Option) *Crawler {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.WorkCount < 1 {
		options.WorkCount = 1
	}
	if options.Fetcher == nil {
		options.Fetcher = &collect.BaseFetch{Logger: options.Logger}
	}
	return &Crawler{options: options}
}

// 列表页完整地址
func (c *Crawler) ListingURL() string {
	return strings.TrimRight(c.BaseURL, "/") + c.ListingPath
}

/*
输入一个上下文，输出写出的记录数和一个错误

该方法先抓取列表页，失败则整个流程终止且不写出任何内容；随后按链接发现顺序处理每个详情页，单个详情页失败只记录日志并跳过；全部完成后保存并刷新存储器
*/
func (c *Crawler) Run(ctx context.Context) (int, error) {
	if c.Storage == nil {
		return 0, errors.New("no storage configured")
	}

	listingURL := c.ListingURL()
	body, err := c.Fetcher.Get(ctx, listingURL)
	if err != nil {
		return 0, fmt.Errorf("fetch listing page failed: %w", err)
	}

	urls, err := futgg.CollectLinks(body, c.BaseURL)
	if err != nil {
		return 0, err
	}
	c.Logger.Info("found evolution urls", zap.Int("count", len(urls)))

	records, err := c.crawlDetails(ctx, urls)
	if err != nil {
		return 0, err
	}

	if err := c.Storage.Save(records...); err != nil {
		return 0, fmt.Errorf("save records failed: %w", err)
	}
	if err := c.Storage.Flush(); err != nil {
		return 0, fmt.Errorf("flush records failed: %w", err)
	}

	c.Logger.Info("evolutions saved", zap.Int("count", len(records)))
	return len(records), nil
}

// 用至多WorkCount个协程处理详情页，结果按urls的顺序返回，失败的详情页不出现在结果中
func (c *Crawler) crawlDetails(ctx context.Context, urls []string) ([]*evolution.Record, error) {
	slots := make([]*evolution.Record, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.WorkCount)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			rec, err := c.crawlDetail(gctx, u)
			if err != nil {
				// 上下文取消时终止整个流程，其余错误只跳过当前链接
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.Logger.Error("can't fetch ",
					zap.Error(err),
					zap.String("url", u),
				)
				return nil
			}
			slots[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]*evolution.Record, 0, len(urls))
	for _, rec := range slots {
		if rec != nil {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (c *Crawler) crawlDetail(ctx context.Context, url string) (*evolution.Record, error) {
	c.Logger.Info("processing evolution", zap.String("url", url))

	body, err := c.Fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return futgg.Assemble(url, body, c.Logger)
}

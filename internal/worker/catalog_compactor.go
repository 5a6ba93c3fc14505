package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-booking/internal/pkg/logger"
)

// TitleCompactor は重複タイトルを整理するインターフェース
type TitleCompactor interface {
	CompactDuplicateTitles(ctx context.Context) (int64, error)
}

// CatalogCompactor は映画カタログの重複タイトルを定期的に整理するワーカー
type CatalogCompactor struct {
	catalog  TitleCompactor
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewCatalogCompactor は新しいコンパクターを作成する。interval が0以下の場合は定期実行しない
func NewCatalogCompactor(tc TitleCompactor, interval time.Duration) *CatalogCompactor {
	return &CatalogCompactor{
		catalog:  tc,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Enabled は定期実行が有効かを返す
func (c *CatalogCompactor) Enabled() bool {
	return c.interval > 0
}

// Start はコンパクターを開始し、停止するまでブロックする
func (c *CatalogCompactor) Start(ctx context.Context) {
	defer close(c.doneCh)
	if !c.Enabled() {
		logger.Info("重複タイトル整理は無効です")
		return
	}

	logger.Info("重複タイトル整理ワーカー開始", zap.Duration("interval", c.interval))

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("重複タイトル整理ワーカー停止（コンテキストキャンセル）")
			return
		case <-c.stopCh:
			logger.Info("重複タイトル整理ワーカー停止（シグナル受信）")
			return
		case <-ticker.C:
			c.compact(ctx)
		}
	}
}

// Stop はコンパクターを停止し、Start の終了を待つ
func (c *CatalogCompactor) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	<-c.doneCh
}

func (c *CatalogCompactor) compact(ctx context.Context) {
	log := logger.Get()
	log.Debug("重複タイトル整理開始")

	removed, err := c.catalog.CompactDuplicateTitles(ctx)
	if err != nil {
		log.Error("重複タイトル整理失敗", zap.Error(err))
		return
	}

	if removed > 0 {
		log.Info("重複タイトルを整理", zap.Int64("removed", removed))
	} else {
		log.Debug("重複タイトルなし")
	}
}

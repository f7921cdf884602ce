// Пакет permissions кэширует проверки прав оператора.
// Бэкенд спрашивается один раз на slug; отрицательный результат (в том числе
// ошибка проверки) тоже кэшируется и живёт до явного Clear при логауте.
package permissions

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Checker — проверка права у бэкенда. Реализуется rgis.Client.
type Checker interface {
	CheckPermission(ctx context.Context, slug string) (bool, error)
}

// AdminSlugs — фиксированный упорядоченный список прав, любое из которых
// считается признаком администратора.
var AdminSlugs = []string{
	"admin.panel",
	"users.edit",
	"roles.edit",
	"settings.edit",
}

// Cache — кэш проверок прав. Потокобезопасен.
type Cache struct {
	checker Checker
	log     *slog.Logger

	mu   sync.Mutex
	seen map[string]bool

	// Схлопывает одновременные проверки одного slug в один запрос
	sf singleflight.Group
}

func New(checker Checker, log *slog.Logger) *Cache {
	return &Cache{
		checker: checker,
		log:     log.With(slog.String("component", "permissions")),
		seen:    make(map[string]bool),
	}
}

// Has возвращает, разрешён ли slug. Попадание в кэш — без сети.
// Ошибка проверки трактуется как запрет и кэшируется до Clear.
func (c *Cache) Has(ctx context.Context, slug string) bool {
	c.mu.Lock()
	if allowed, ok := c.seen[slug]; ok {
		c.mu.Unlock()
		return allowed
	}
	c.mu.Unlock()

	result, _, _ := c.sf.Do(slug, func() (any, error) {
		allowed, err := c.checker.CheckPermission(ctx, slug)
		if err != nil {
			c.log.Warn("проверка права не удалась, считаю запрещённым",
				slog.String("slug", slug),
				slog.String("error", err.Error()),
			)
			allowed = false
		}

		c.mu.Lock()
		c.seen[slug] = allowed
		c.mu.Unlock()

		return allowed, nil
	})

	return result.(bool)
}

// HasAdminAccess проходит список AdminSlugs по порядку и останавливается
// на первом разрешённом.
func (c *Cache) HasAdminAccess(ctx context.Context) bool {
	for _, slug := range AdminSlugs {
		if c.Has(ctx, slug) {
			return true
		}
	}
	return false
}

// Clear сбрасывает кэш. Вызывается при логауте.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.seen = make(map[string]bool)
	c.mu.Unlock()
}

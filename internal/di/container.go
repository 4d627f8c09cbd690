package di

import (
	"context"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/looprevenue/loop-cms/internal/editor"
	adminhttp "github.com/looprevenue/loop-cms/internal/http"
	"github.com/looprevenue/loop-cms/internal/logging"
	"github.com/looprevenue/loop-cms/internal/logging/gologger"
	internalnarration "github.com/looprevenue/loop-cms/internal/narration"
	internalpages "github.com/looprevenue/loop-cms/internal/pages"
	internalresources "github.com/looprevenue/loop-cms/internal/resources"
	"github.com/looprevenue/loop-cms/internal/runtimeconfig"
	internalslots "github.com/looprevenue/loop-cms/internal/slots"
	"github.com/looprevenue/loop-cms/narration"
	"github.com/looprevenue/loop-cms/pages"
	"github.com/looprevenue/loop-cms/pkg/interfaces"
	"github.com/looprevenue/loop-cms/resources"
)

// Container wires module dependencies from configuration. Memory-backed
// repositories are the default; a bun DB upgrades storage in place.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	pageRepo internalpages.PageRepository
	pageSvc  pages.Service

	registry *internalslots.StaticRegistry

	resourceStore    *internalresources.Store
	resourceImporter *internalresources.Importer
	resourceSvc      resources.Service

	narrationCtx narration.Context

	previewBuilder *editor.PreviewBuilder

	adminAPI *adminhttp.AdminAPI
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds a database-backed page repository instead of the
// in-memory default.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default repository cache bindings.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the provider derived from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithPageService overrides the default page service binding.
func WithPageService(svc pages.Service) Option {
	return func(c *Container) {
		c.pageSvc = svc
	}
}

// WithSlotRegistry overrides the built-in site registry.
func WithSlotRegistry(registry *internalslots.StaticRegistry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// WithResourceService overrides the default resource listing binding.
func WithResourceService(svc resources.Service) Option {
	return func(c *Container) {
		c.resourceSvc = svc
	}
}

// WithNarrationContext overrides the default shared narration context.
func WithNarrationContext(ctx narration.Context) Option {
	return func(c *Container) {
		c.narrationCtx = ctx
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) *Container {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
		pageRepo: internalpages.NewMemoryPageRepository(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.configureLogging()
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureSlots()
	c.configureResources()
	c.configureNarration()
	c.configurePreview()

	if c.pageSvc == nil {
		c.pageSvc = internalpages.NewService(
			c.pageRepo,
			internalpages.WithLogger(c.moduleLogger("pages")),
		)
	}

	return c
}

func (c *Container) configureLogging() {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return
	}

	logCfg := c.Config.Logging
	format := logCfg.Format
	if strings.EqualFold(strings.TrimSpace(logCfg.Provider), "console") && format == "" {
		format = "console"
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     logCfg.Level,
		Format:    format,
		AddSource: logCfg.AddSource,
		Focus:     logCfg.Focus,
	})
	if err != nil {
		return
	}
	c.loggerProvider = provider
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}
	c.pageRepo = internalpages.NewBunPageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

func (c *Container) configureSlots() {
	if c.registry == nil {
		c.registry = internalslots.NewSiteRegistry()
	}

	dir := strings.TrimSpace(c.Config.Slots.ConfigDir)
	if dir == "" {
		return
	}
	if err := internalslots.LoadDirectory(dir, c.registry); err != nil {
		c.moduleLogger("slots").Warn("slot configuration directory skipped", "dir", dir, "error", err)
	}
}

func (c *Container) configureResources() {
	if !c.Config.Features.Resources {
		return
	}

	c.resourceStore = internalresources.NewStore()

	resCfg := c.Config.Resources
	importerOpts := []internalresources.ImporterOption{
		internalresources.WithImportLogger(c.moduleLogger("resources")),
		internalresources.WithRecursive(resCfg.Recursive),
	}
	if pattern := strings.TrimSpace(resCfg.Pattern); pattern != "" {
		importerOpts = append(importerOpts, internalresources.WithPattern(pattern))
	}
	c.resourceImporter = internalresources.NewImporter(c.resourceStore, importerOpts...)

	if c.resourceSvc == nil {
		serviceOpts := []internalresources.ServiceOption{
			internalresources.WithLogger(c.moduleLogger("resources")),
		}
		if resCfg.DefaultLimit > 0 || resCfg.MaxLimit > 0 {
			serviceOpts = append(serviceOpts, internalresources.WithLimits(resCfg.DefaultLimit, resCfg.MaxLimit))
		}
		c.resourceSvc = internalresources.NewService(c.resourceStore, serviceOpts...)
	}
}

func (c *Container) configureNarration() {
	if c.narrationCtx != nil || !c.Config.Features.Narration {
		return
	}
	c.narrationCtx = internalnarration.NewContext(
		internalnarration.WithLogger(c.moduleLogger("narration")),
	)
}

func (c *Container) configurePreview() {
	if !c.Config.Preview.Enabled {
		return
	}
	c.previewBuilder = editor.NewPreviewBuilder(editor.PreviewOptions{
		BaseURL:    c.Config.Preview.BaseURL,
		FlagParam:  c.Config.Preview.FlagParam,
		NonceParam: c.Config.Preview.NonceParam,
	})
}

func (c *Container) moduleLogger(module string) interfaces.Logger {
	return logging.ModuleLogger(c.loggerProvider, "loopcms."+module)
}

// LoggerProvider exposes the configured logger provider. It may be nil when
// the logging feature is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// PageRepository exposes the configured page repository.
func (c *Container) PageRepository() internalpages.PageRepository {
	return c.pageRepo
}

// PageService returns the configured page service.
func (c *Container) PageService() pages.Service {
	return c.pageSvc
}

// SlotRegistry returns the slot configuration registry.
func (c *Container) SlotRegistry() *internalslots.StaticRegistry {
	return c.registry
}

// ResourceService returns the resource listing service, or nil when the
// resources feature is disabled.
func (c *Container) ResourceService() resources.Service {
	return c.resourceSvc
}

// ResourceImporter returns the markdown importer, or nil when the resources
// feature is disabled.
func (c *Container) ResourceImporter() *internalresources.Importer {
	return c.resourceImporter
}

// NarrationContext returns the shared audio context, or nil when the
// narration feature is disabled.
func (c *Container) NarrationContext() narration.Context {
	return c.narrationCtx
}

// PreviewBuilder returns the preview URL builder, or nil when preview is
// disabled.
func (c *Container) PreviewBuilder() *editor.PreviewBuilder {
	return c.previewBuilder
}

// EditorSession opens a page editor session backed by the container's page
// service and slot registry.
func (c *Container) EditorSession(ctx context.Context, pageID uuid.UUID) (*editor.Session, error) {
	opts := []editor.SessionOption{
		editor.WithLogger(c.moduleLogger("editor")),
	}
	if c.previewBuilder != nil {
		opts = append(opts, editor.WithPreviewBuilder(c.previewBuilder))
	}
	return editor.NewSession(ctx, c.pageSvc, c.registry, pageID, opts...)
}

// AdminAPI returns the HTTP surface wired to the container services (lazy).
func (c *Container) AdminAPI() *adminhttp.AdminAPI {
	if c.adminAPI != nil {
		return c.adminAPI
	}

	opts := []adminhttp.AdminOption{
		adminhttp.WithPageService(c.pageSvc),
		adminhttp.WithSlotRegistry(c.registry),
		adminhttp.WithLogger(c.moduleLogger("http")),
	}
	if c.resourceSvc != nil {
		opts = append(opts, adminhttp.WithResourceService(c.resourceSvc))
	}
	if c.previewBuilder != nil {
		opts = append(opts, adminhttp.WithPreviewBuilder(c.previewBuilder))
	}

	c.adminAPI = adminhttp.NewAdminAPI(opts...)
	return c.adminAPI
}

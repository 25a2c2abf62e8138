package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/GregMSThompson/retail-backend/internal/dto"
	"github.com/GregMSThompson/retail-backend/internal/errs"
	"github.com/GregMSThompson/retail-backend/internal/middleware"
	"github.com/GregMSThompson/retail-backend/internal/models"
	"github.com/GregMSThompson/retail-backend/pkg/helpers"
	"github.com/GregMSThompson/retail-backend/pkg/logger"
)

// maxComponentFetches caps concurrent provider calls while expanding one
// layout's components.
const maxComponentFetches = 8

// --- Dependencies (minimal interfaces scoped to this service) ---

// layoutStore is the widget service surface: layout lookups plus the
// product-slider definitions it owns.
type layoutStore interface {
	GetActiveLayout(ctx context.Context) (*dto.LayoutData, error)
	GetLayoutByID(ctx context.Context, widgetID string) (*dto.LayoutData, error)
	GetProductSlider(ctx context.Context, sliderID string) (*models.ProductSlider, error)
}

// surveyLSProvider is the survey service surface used during composition.
type surveyLSProvider interface {
	GetSingleSurvey(ctx context.Context, surveyID string) (*models.SurveyDetail, error)
	DidUserAnswered(ctx context.Context, uid string, surveyIDs []string) ([]dto.AnsweredSurvey, error)
}

// sampleLSProvider resolves per-user sample statuses in bulk.
type sampleLSProvider interface {
	GetSampleStatus(ctx context.Context, uid string, sampleIDs []string) ([]dto.SampleStatus, error)
}

// productLSCatalog runs the catalog query a slider definition describes.
type productLSCatalog interface {
	AllProducts(ctx context.Context, query dto.ProductQuery) (*dto.ProductPage, error)
}

type layoutService struct {
	layouts layoutStore
	surveys surveyLSProvider
	samples sampleLSProvider
	catalog productLSCatalog
}

func NewLayoutService(layouts layoutStore, surveys surveyLSProvider, samples sampleLSProvider, catalog productLSCatalog) *layoutService {
	return &layoutService{
		layouts: layouts,
		surveys: surveys,
		samples: samples,
		catalog: catalog,
	}
}

// --- Public service methods ---

// GetActiveLayout composes the personalized home feed from the currently
// active layout. Works for anonymous callers; personalization degrades.
func (s *layoutService) GetActiveLayout(ctx context.Context, auth middleware.Auth) (*dto.LayoutResponse, error) {
	data, err := s.loadLayout(ctx, func(ctx context.Context) (*dto.LayoutData, error) {
		return s.layouts.GetActiveLayout(ctx)
	})
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, auth, data, true, "Active layout fetched successfully")
}

// GetLayoutByID composes the feed for a specific widget id. Banners are
// passed through unfiltered on this path; the caller is always authenticated
// (the route requires a bearer token).
func (s *layoutService) GetLayoutByID(ctx context.Context, auth middleware.Auth, widgetID string) (*dto.LayoutResponse, error) {
	data, err := s.loadLayout(ctx, func(ctx context.Context) (*dto.LayoutData, error) {
		return s.layouts.GetLayoutByID(ctx, widgetID)
	})
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, auth, data, false, "Layout fetched successfully")
}

func (s *layoutService) loadLayout(ctx context.Context, fetch func(context.Context) (*dto.LayoutData, error)) (*dto.LayoutData, error) {
	data, err := fetch(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.NewNotFoundError("Layout not found")
		}
		return nil, err
	}
	if data == nil || data.Widget.WidgetID == "" {
		return nil, errs.NewNotFoundError("Layout not found")
	}
	return data, nil
}

// --- Composition ---

// compose builds the final feed: resolve answered surveys, personalize
// banners, expand components concurrently, then merge and stable-sort by
// widget order. Read-only over its inputs; one provider failure aborts the
// whole feed.
func (s *layoutService) compose(ctx context.Context, auth middleware.Auth, data *dto.LayoutData, personalizeBanners bool, message string) (*dto.LayoutResponse, error) {
	answered, err := s.resolveAnsweredSurveys(ctx, auth, data.Widget.Components)
	if err != nil {
		return nil, err
	}

	entries, err := s.bannerEntries(ctx, auth, data.Banners, personalizeBanners)
	if err != nil {
		return nil, err
	}

	componentEntries, err := s.componentEntries(ctx, auth, data.Widget.Components, answered)
	if err != nil {
		return nil, err
	}
	entries = append(entries, componentEntries...)

	// Stable: equal orders keep banners-then-components insertion order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WidgetMetadata.WidgetOrder < entries[j].WidgetMetadata.WidgetOrder
	})

	log := logger.FromContext(ctx)
	log.Debug("layout composed",
		"widget_id", data.Widget.WidgetID,
		"entries", len(entries),
		"authenticated", auth.Authenticated)

	return &dto.LayoutResponse{
		WidgetID: data.Widget.WidgetID,
		Widgets:  entries,
		Message:  message,
	}, nil
}

// resolveAnsweredSurveys bulk-checks which referenced surveys the caller has
// already answered. Anonymous callers and survey-free layouts skip the call.
func (s *layoutService) resolveAnsweredSurveys(ctx context.Context, auth middleware.Auth, components []models.Component) (map[string]bool, error) {
	if !auth.Authenticated {
		return nil, nil
	}
	var ids []string
	for _, c := range components {
		if c.ComponentType == models.ComponentTypeSurvey && c.ReferenceModelID != "" {
			ids = append(ids, c.ReferenceModelID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.surveys.DidUserAnswered(ctx, auth.UID, ids)
	if err != nil {
		return nil, err
	}
	answered := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.DidUserAnswered {
			answered[row.SurveyID] = true
		}
	}
	return answered, nil
}

// --- Banner personalization ---

type bannerAction int

const (
	bannerKeep bannerAction = iota
	bannerKeepWithStatus
	bannerDrop
)

// resolveBannerAction is the banner rule set as one decision table:
// (auth state, sample gate, resolved status) → action. Sample-gated banners
// need a session and a known, existing sample; an unresolved or NOT_FOUND
// status drops the banner.
func resolveBannerAction(authenticated bool, sampleID, status string, found bool) bannerAction {
	if sampleID == "" {
		return bannerKeep
	}
	if !authenticated {
		return bannerDrop
	}
	if !found || status == models.SampleStatusNotFound {
		return bannerDrop
	}
	return bannerKeepWithStatus
}

func (s *layoutService) bannerEntries(ctx context.Context, auth middleware.Auth, banners []models.Banner, personalize bool) ([]dto.LayoutEntry, error) {
	entries := make([]dto.LayoutEntry, 0, len(banners))

	if !personalize {
		for _, b := range banners {
			entries = append(entries, bannerEntry(b, b.WidgetFilter))
		}
		return entries, nil
	}

	statuses, err := s.resolveSampleStatuses(ctx, auth, banners)
	if err != nil {
		return nil, err
	}

	for _, b := range banners {
		sampleID := ""
		if b.WidgetFilter != nil {
			sampleID = b.WidgetFilter.SampleID
		}
		status, found := statuses[sampleID]

		switch resolveBannerAction(auth.Authenticated, sampleID, status, found) {
		case bannerKeep:
			entries = append(entries, bannerEntry(b, b.WidgetFilter))
		case bannerKeepWithStatus:
			filter := *b.WidgetFilter
			filter.SampleStatus = status
			entries = append(entries, bannerEntry(b, &filter))
		case bannerDrop:
		}
	}
	return entries, nil
}

// resolveSampleStatuses makes the single bulk status call for all sample ids
// referenced by the banner set. Anonymous callers and sample-free banner sets
// skip the call.
func (s *layoutService) resolveSampleStatuses(ctx context.Context, auth middleware.Auth, banners []models.Banner) (map[string]string, error) {
	if !auth.Authenticated {
		return nil, nil
	}
	var ids []string
	seen := make(map[string]struct{})
	for _, b := range banners {
		if b.WidgetFilter == nil || b.WidgetFilter.SampleID == "" {
			continue
		}
		if _, ok := seen[b.WidgetFilter.SampleID]; ok {
			continue
		}
		seen[b.WidgetFilter.SampleID] = struct{}{}
		ids = append(ids, b.WidgetFilter.SampleID)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.samples.GetSampleStatus(ctx, auth.UID, ids)
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]string, len(rows))
	for _, row := range rows {
		statuses[row.SampleID] = row.Status
	}
	return statuses, nil
}

func bannerEntry(b models.Banner, filter *models.WidgetFilter) dto.LayoutEntry {
	entry := dto.LayoutEntry{
		WidgetType: dto.WidgetTypeBanner,
		WidgetMetadata: dto.WidgetMetadata{
			WidgetOrder: b.Order,
			Name:        b.Name,
			Image:       b.Image,
		},
	}
	if filter != nil {
		entry.WidgetFilter = filter
	}
	return entry
}

// --- Component expansion ---

// componentEntries expands components concurrently. The answered set and auth
// state are read-only during the fan-out, so they are shared without locking.
// A nil result means the component was skipped; the first error cancels the
// remaining fetches and fails the whole composition.
func (s *layoutService) componentEntries(ctx context.Context, auth middleware.Auth, components []models.Component, answered map[string]bool) ([]dto.LayoutEntry, error) {
	results := make([]*dto.LayoutEntry, len(components))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxComponentFetches)
	for i, c := range components {
		i, c := i, c
		g.Go(func() error {
			entry, err := s.componentEntry(ctx, auth, c, answered)
			if err != nil {
				return err
			}
			results[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Completion order never leaks into output order: results are collected
	// by component index and the caller sorts by widget order.
	entries := make([]dto.LayoutEntry, 0, len(components))
	for _, entry := range results {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func (s *layoutService) componentEntry(ctx context.Context, auth middleware.Auth, c models.Component, answered map[string]bool) (*dto.LayoutEntry, error) {
	switch c.ComponentType {
	case models.ComponentTypeSurvey:
		return s.surveyEntry(ctx, auth, c, answered)
	case models.ComponentTypeProductSlider:
		return s.sliderEntry(ctx, c)
	default:
		// Reserved component types are a no-op until a widget exists for them.
		return nil, nil
	}
}

func (s *layoutService) surveyEntry(ctx context.Context, auth middleware.Auth, c models.Component, answered map[string]bool) (*dto.LayoutEntry, error) {
	if !auth.Authenticated || c.ReferenceModelID == "" || answered[c.ReferenceModelID] {
		return nil, nil
	}
	survey, err := s.surveys.GetSingleSurvey(ctx, c.ReferenceModelID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if survey == nil {
		return nil, nil
	}

	options := make([]dto.SurveyOptionItem, len(survey.Options))
	for i, opt := range survey.Options {
		options[i] = dto.SurveyOptionItem{
			Label: opt.Option,
			Value: opt.ID,
			Count: opt.Count,
		}
	}
	return &dto.LayoutEntry{
		WidgetType:     dto.WidgetTypeSurvey,
		WidgetMetadata: dto.WidgetMetadata{WidgetOrder: c.Order},
		WidgetData: dto.SurveyWidgetData{
			Question:      survey.Question,
			Options:       options,
			TotalAnswered: survey.TotalAnswered,
		},
	}, nil
}

func (s *layoutService) sliderEntry(ctx context.Context, c models.Component) (*dto.LayoutEntry, error) {
	if c.ReferenceModelID == "" {
		return nil, nil
	}
	slider, err := s.layouts.GetProductSlider(ctx, c.ReferenceModelID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if slider == nil {
		return nil, nil
	}

	query := buildProductQuery(slider)
	page, err := s.catalog.AllProducts(ctx, query)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if page == nil || len(page.Products) == 0 {
		return nil, nil
	}

	return &dto.LayoutEntry{
		WidgetType: dto.WidgetTypeProductSlider,
		WidgetMetadata: dto.WidgetMetadata{
			WidgetOrder:     c.Order,
			Name:            slider.ModuleName,
			BrandLogo:       slider.BrandLogo,
			BackgroundColor: slider.BackgroundColor,
		},
		WidgetData:   page.Products,
		WidgetFilter: query,
	}, nil
}

// buildProductQuery maps a slider definition onto a catalog query. Optional
// filters are only set when the slider actually constrains them; the query is
// also returned to clients so they can replay it for load-more.
func buildProductQuery(slider *models.ProductSlider) dto.ProductQuery {
	query := dto.ProductQuery{
		SortByField: slider.SortByField,
		SortByOrder: slider.SortByOrder,
		Limit:       slider.NumberOfProduct,
		Page:        1,
	}
	if len(slider.Brands) > 0 {
		query.BrandIDs = refIDs(slider.Brands)
	}
	if len(slider.Retailers) > 0 {
		query.RetailerIDs = refIDs(slider.Retailers)
	}
	if len(slider.Categories) > 0 {
		query.CategoryIDs = refIDs(slider.Categories)
	}
	if slider.PromotionType != "" {
		query.PromotionType = helpers.Ptr(slider.PromotionType)
	}
	return query
}

// --- Helpers ---

func refIDs(refs []models.IDRef) []string {
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}

func isNotFound(err error) bool {
	_, ok := err.(*errs.NotFoundError)
	return ok
}

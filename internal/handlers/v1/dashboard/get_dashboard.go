package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/service"
)

type GetDashboardInput struct {
	Month    string   `query:"month" doc:"Reference month as YYYY-MM, defaults to the current month"`
	Seasonal bool     `query:"seasonal" doc:"Bucket the series by month across every year"`
	Labels   []string `query:"labels" maxItems:"12" doc:"Series labels, January first"`
}

type GetDashboardOutput struct {
	Body Dashboard
}

type dashboardGetter interface {
	Get(ctx context.Context, userID uuid.UUID, query service.DashboardQuery) (service.Dashboard, error)
}

// GetDashboardHandler handles GET /v1/dashboard.
type GetDashboardHandler struct {
	DashboardService dashboardGetter
}

func NewGetDashboardHandler(svc dashboardGetter) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc}
}

func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Get dashboard aggregates",
		Description: "Summary, savings rate, category breakdown, budget status, monthly series and recent transactions.",
		Tags:        []string{"Dashboard"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	month, err := handlers.ParseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	dashboard, err := h.DashboardService.Get(ctx, userID, service.DashboardQuery{
		Month:       month,
		Seasonal:    input.Seasonal,
		MonthLabels: input.Labels,
	})
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to compute dashboard")
	}
	return &GetDashboardOutput{Body: toDashboard(dashboard)}, nil
}

package pms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/moa_wifi/config"
	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/Gunvolt24/moa_wifi/pkg/metrics"
)

// Проверка, что Client удовлетворяет порту ReservationSource.
var _ ports.ReservationSource = (*Client)(nil)

// maxPageSize — лимит записей на запрос, который принимает Connector API.
const maxPageSize = 1000

// Client — HTTP-клиент Connector API (Mews-совместимый PMS).
// Все вызовы — POST с JSON-телом, токены аутентификации в теле запроса.
// Повторов нет: upstream медленный и с rate limit'ами, ретраи внутри
// запроса валидации только усугубляют ситуацию.
type Client struct {
	httpClient *http.Client
	baseURL    string
	auth       authPayload
	states     []string
	log        ports.Logger
}

// NewClient — конструктор по конфигурации PMS.
func NewClient(cfg config.PMS, log ports.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		auth: authPayload{
			ClientToken: cfg.ClientToken,
			AccessToken: cfg.AccessToken,
			Client:      cfg.Client,
		},
		states: cfg.States,
		log:    log,
	}
}

// FetchOverlapping — брони, пересекающие окно [start, end), в допустимых состояниях.
func (c *Client) FetchOverlapping(ctx context.Context, start, end time.Time) ([]domain.ReservationRaw, error) {
	req := reservationsRequest{
		authPayload: c.auth,
		Limitation:  limitation{Count: maxPageSize},
		TimeFilter: timeFilter{
			StartUTC: start.UTC().Format(time.RFC3339),
			EndUTC:   end.UTC().Format(time.RFC3339),
		},
		States: c.states,
	}

	var resp reservationsResponse
	if err := c.post(ctx, "/reservations/getAll", req, &resp); err != nil {
		return nil, err
	}

	out := make([]domain.ReservationRaw, 0, len(resp.Reservations))
	for _, item := range resp.Reservations {
		startUTC, err := time.Parse(time.RFC3339, item.StartUTC)
		if err != nil {
			c.log.Warnf(ctx, "pms: bad StartUtc in reservation %s: %v", item.ID, err)
			continue
		}
		endUTC, err := time.Parse(time.RFC3339, item.EndUTC)
		if err != nil {
			c.log.Warnf(ctx, "pms: bad EndUtc in reservation %s: %v", item.ID, err)
			continue
		}
		out = append(out, domain.ReservationRaw{
			ID:         item.ID,
			ResourceID: item.AssignedResourceID,
			CustomerID: item.CustomerID,
			StartUTC:   startUTC,
			EndUTC:     endUTC,
			State:      item.State,
		})
	}
	return out, nil
}

// CustomerSurname — фамилия гостя по идентификатору аккаунта.
// Берём LastName; при его отсутствии — последнее слово полного имени.
func (c *Client) CustomerSurname(ctx context.Context, customerID string) (string, error) {
	req := customersRequest{
		authPayload: c.auth,
		Limitation:  limitation{Count: 1},
		CustomerIDs: []string{customerID},
	}

	var resp customersResponse
	if err := c.post(ctx, "/customers/getAll", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Customers) == 0 {
		return "", fmt.Errorf("pms: customer %s not found", customerID)
	}

	customer := resp.Customers[0]
	if s := strings.TrimSpace(customer.LastName); s != "" {
		return s, nil
	}
	if fields := strings.Fields(customer.Name); len(fields) > 0 {
		return fields[len(fields)-1], nil
	}
	return "", nil
}

// Resources — весь каталог номеров PMS (для синхронизации каталога).
func (c *Client) Resources(ctx context.Context) ([]domain.Room, error) {
	req := resourcesRequest{
		authPayload: c.auth,
		Limitation:  limitation{Count: maxPageSize},
	}

	var resp resourcesResponse
	if err := c.post(ctx, "/resources/getAll", req, &resp); err != nil {
		return nil, err
	}

	rooms := make([]domain.Room, 0, len(resp.Resources))
	for _, r := range resp.Resources {
		if r.ID == "" || r.Name == "" {
			continue
		}
		rooms = append(rooms, domain.Room{ID: r.ID, Name: strings.TrimSpace(r.Name)})
	}
	return rooms, nil
}

// post — один POST-запрос с JSON-телом и разбором ответа в out.
func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("pms: marshal %s: %w", endpoint, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("pms: build request %s: %w", endpoint, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.PMSRequests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("pms: request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.PMSRequests.WithLabelValues(endpoint, "error").Inc()
		// Тело нужно только для диагностики, читаем ограниченно.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("pms: %s returned %d: %s", endpoint, resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.PMSRequests.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("pms: decode %s: %w", endpoint, err)
	}

	metrics.PMSRequests.WithLabelValues(endpoint, "ok").Inc()
	c.log.Infof(ctx, "pms: %s completed in %s", endpoint, time.Since(start))
	return nil
}

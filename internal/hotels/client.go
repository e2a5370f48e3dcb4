package hotels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"example.com/ai-trip-planner/backend/internal/trip"
)

// tokenExpirySkew вычитается из времени жизни токена, чтобы не
// использовать токен на границе истечения.
const tokenExpirySkew = 30 * time.Second

// Client calls the hotel offers API using OAuth2 client credentials.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient создает клиент API отелей с заданными параметрами.
func NewClient(baseURL, clientID, clientSecret string, timeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse token response: %w", err)
	}
	if result.AccessToken == "" {
		return errors.New("token response missing access_token")
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenExpirySkew)
	c.mu.Unlock()

	return nil
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	token := c.accessToken
	c.mu.Unlock()

	if expired || token == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		token = c.accessToken
		c.mu.Unlock()
	}
	return token, nil
}

type offersResponse struct {
	Data []struct {
		Name          string  `json:"name"`
		Area          string  `json:"area"`
		PricePerNight string  `json:"price_per_night"`
		Rating        float64 `json:"rating"`
		Description   string  `json:"description"`
	} `json:"data"`
}

// Search возвращает предложения отелей по городу и датам заезда и выезда.
func (c *Client) Search(ctx context.Context, city, checkIn, checkOut string, guests int) ([]trip.HotelSuggestion, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/offers?city=%s&check_in=%s&check_out=%s&guests=%d",
		c.baseURL,
		url.QueryEscape(city),
		url.QueryEscape(checkIn),
		url.QueryEscape(checkOut),
		guests,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("offers request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed offersResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse offers response: %w", err)
	}

	suggestions := make([]trip.HotelSuggestion, 0, len(parsed.Data))
	for _, offer := range parsed.Data {
		if strings.TrimSpace(offer.Name) == "" {
			continue
		}
		suggestions = append(suggestions, trip.HotelSuggestion{
			Name:          offer.Name,
			Area:          offer.Area,
			PricePerNight: trip.CostText(offer.PricePerNight),
			Rating:        offer.Rating,
			Notes:         offer.Description,
		})
	}

	return suggestions, nil
}

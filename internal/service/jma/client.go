// Package jma fetches active weather warnings and advisories from the JMA
// bosai feed and localizes them into the supported languages.
package jma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/phrase"
	"github.com/anzen-app/bosai-go/internal/service/translator"
	"github.com/anzen-app/bosai-go/pkg/errors"
)

const statusIssued = "発表"

// warningResponse mirrors the per-area warning JSON document.
type warningResponse struct {
	ReportDatetime string `json:"reportDatetime"`
	AreaTypes      []struct {
		Areas []struct {
			Name     string `json:"name"`
			Warnings []struct {
				Code   string `json:"code"`
				Status string `json:"status"`
			} `json:"warnings"`
		} `json:"areas"`
	} `json:"areaTypes"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	table      *phrase.Table
	translator *translator.Service
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, table *phrase.Table, tr *translator.Service, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		table:      table,
		translator: tr,
		logger:     logger,
	}
}

// FetchWarnings retrieves the active warnings for one forecast area and
// localizes them into lang. Catalog languages are rendered statically; the
// rest go through the AI tier with an English fallback.
func (c *Client) FetchWarnings(ctx context.Context, areaCode string, lang domain.Language) ([]domain.WarningRecord, error) {
	url := fmt.Sprintf("%s/warning/data/warning/%s.json", c.baseURL, areaCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewAPIError("failed to build warning request", 0, map[string]any{"area_code": areaCode})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAPIError("warning fetch failed", 0, map[string]any{"area_code": areaCode}).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewAPIError("warning feed returned non-2xx status", resp.StatusCode, map[string]any{
			"area_code": areaCode,
		})
	}

	var payload warningResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.NewAPIError("warning feed returned invalid JSON", resp.StatusCode, map[string]any{
			"area_code": areaCode,
		}).WithCause(err)
	}

	if phrase.StaticWarningLanguages[lang] {
		return c.parseStatic(payload, areaCode, lang), nil
	}
	return c.parseWithAI(ctx, payload, areaCode, lang), nil
}

// parseStatic renders records from the warning catalog without AI calls.
func (c *Client) parseStatic(payload warningResponse, areaCode string, lang domain.Language) []domain.WarningRecord {
	var records []domain.WarningRecord
	stamp := time.Now().Format("200601021504")

	for _, areaType := range payload.AreaTypes {
		for _, area := range areaType.Areas {
			for _, warning := range area.Warnings {
				if warning.Status != statusIssued || !phrase.KnownWarningCode(warning.Code) {
					continue
				}

				severity := phrase.WarningSeverity(warning.Code)
				titleJA := phrase.WarningName(warning.Code, domain.LangJapanese)
				record := domain.WarningRecord{
					ID:          fmt.Sprintf("%s_%s_%s", areaCode, warning.Code, stamp),
					AreaCode:    areaCode,
					Type:        domain.AlertTypeFor(severity),
					Title:       titleJA,
					Description: phrase.WarningDescription(area.Name, titleJA, domain.LangJapanese),
					Area:        c.staticAreaName(area.Name, lang),
					IssuedAt:    payload.ReportDatetime,
					Severity:    severity,
				}
				if lang != domain.LangJapanese {
					name := phrase.WarningName(warning.Code, lang)
					record.TitleTranslated = name
					record.DescriptionTranslated = phrase.WarningDescription(record.Area, name, lang)
				}
				records = append(records, record)
			}
		}
	}
	return records
}

// parseWithAI renders records for languages outside the static catalog. A
// failed generation degrades to the English catalog entry.
func (c *Client) parseWithAI(ctx context.Context, payload warningResponse, areaCode string, lang domain.Language) []domain.WarningRecord {
	var records []domain.WarningRecord
	stamp := time.Now().Format("200601021504")

	for _, areaType := range payload.AreaTypes {
		for _, area := range areaType.Areas {
			for _, warning := range area.Warnings {
				if warning.Status != statusIssued || !phrase.KnownWarningCode(warning.Code) {
					continue
				}

				severity := phrase.WarningSeverity(warning.Code)
				titleJA := phrase.WarningName(warning.Code, domain.LangJapanese)
				record := domain.WarningRecord{
					ID:          fmt.Sprintf("%s_%s_%s", areaCode, warning.Code, stamp),
					AreaCode:    areaCode,
					Type:        domain.AlertTypeFor(severity),
					Title:       titleJA,
					Description: phrase.WarningDescription(area.Name, titleJA, domain.LangJapanese),
					IssuedAt:    payload.ReportDatetime,
					Severity:    severity,
				}

				text := c.translator.WarningText(ctx, titleJA, lang, area.Name, severity)
				if text.Description != "" {
					record.TitleTranslated = text.Name
					record.DescriptionTranslated = text.Description
					record.Action = text.Action
					record.Area = c.translator.TranslateLocation(ctx, area.Name, lang)
				} else {
					// English catalog fallback keeps the record shippable.
					enName := phrase.WarningName(warning.Code, domain.LangEnglish)
					record.TitleTranslated = enName
					record.DescriptionTranslated = phrase.WarningDescription(
						c.staticAreaName(area.Name, domain.LangEnglish), enName, domain.LangEnglish)
					record.Area = area.Name
				}
				records = append(records, record)
			}
		}
	}
	return records
}

// staticAreaName translates an area label without touching the AI tier.
// Labels outside the curated table keep their Japanese form.
func (c *Client) staticAreaName(name string, lang domain.Language) string {
	if lang == domain.LangJapanese {
		return name
	}
	if v, ok := c.table.Location(name, lang); ok {
		return v
	}
	return name
}

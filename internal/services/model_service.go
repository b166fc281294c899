package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"fastwrite/internal/models"
)

// ModelCatalogService exposes the static provider -> model catalog.
type ModelCatalogService interface {
	ListModelGroups() []models.LLMModelGroup
	HasProvider(providerID string) bool
	ModelsFor(providerID string) []models.LLMModel
	DefaultModel(providerID string) string
	GetModel(providerID, modelID string) (*models.LLMModel, error)
	DisplayName(modelID string) string
	ProviderName(providerID string) string
	KeyURL(providerID string) string
}

type modelCatalogService struct {
	providerOrder []string
	providerNames map[string]string
	keyURLs       map[string]string
	models        map[string][]catalogModel
	displayNames  map[string]string
}

type catalogModel struct {
	ProviderID  string
	APIName     string
	DisplayName string
}

type rawModelFile struct {
	Providers []rawProvider `json:"providers"`
}

type rawProvider struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	KeyURL      string     `json:"keyUrl"`
	Models      []rawModel `json:"models"`
}

type rawModel struct {
	DisplayName string `json:"displayName"`
	APIName     string `json:"apiName"`
}

// NewModelCatalogService parses a catalog document (normally assets.ModelsData).
// Provider and model order follow the document.
func NewModelCatalogService(raw []byte) (ModelCatalogService, error) {
	var parsed rawModelFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse models asset: %w", err)
	}

	s := &modelCatalogService{
		providerOrder: make([]string, 0, len(parsed.Providers)),
		providerNames: make(map[string]string),
		keyURLs:       make(map[string]string),
		models:        make(map[string][]catalogModel),
		displayNames:  make(map[string]string),
	}
	for _, provider := range parsed.Providers {
		providerID := strings.TrimSpace(provider.ID)
		if providerID == "" {
			continue
		}
		if _, dup := s.providerNames[providerID]; dup {
			return nil, fmt.Errorf("duplicate provider %s in models asset", providerID)
		}
		s.providerNames[providerID] = strings.TrimSpace(provider.DisplayName)
		s.keyURLs[providerID] = strings.TrimSpace(provider.KeyURL)
		s.providerOrder = append(s.providerOrder, providerID)
		for _, mdl := range provider.Models {
			apiName := strings.TrimSpace(mdl.APIName)
			if apiName == "" {
				continue
			}
			display := strings.TrimSpace(mdl.DisplayName)
			s.models[providerID] = append(s.models[providerID], catalogModel{
				ProviderID:  providerID,
				APIName:     apiName,
				DisplayName: display,
			})
			if display != "" {
				s.displayNames[apiName] = display
			}
		}
	}
	return s, nil
}

func (s *modelCatalogService) ListModelGroups() []models.LLMModelGroup {
	groups := make([]models.LLMModelGroup, 0, len(s.providerOrder))
	for _, providerID := range s.providerOrder {
		groups = append(groups, models.LLMModelGroup{
			ProviderID:   providerID,
			ProviderName: s.ProviderName(providerID),
			KeyURL:       s.keyURLs[providerID],
			Models:       s.ModelsFor(providerID),
		})
	}
	return groups
}

func (s *modelCatalogService) HasProvider(providerID string) bool {
	_, ok := s.providerNames[strings.TrimSpace(providerID)]
	return ok
}

func (s *modelCatalogService) ModelsFor(providerID string) []models.LLMModel {
	providerID = strings.TrimSpace(providerID)
	catalog := s.models[providerID]
	out := make([]models.LLMModel, 0, len(catalog))
	for _, mdl := range catalog {
		out = append(out, s.toLLMModel(mdl))
	}
	return out
}

// DefaultModel returns the first model listed for the provider, or "" when the
// provider is unknown or has no models.
func (s *modelCatalogService) DefaultModel(providerID string) string {
	catalog := s.models[strings.TrimSpace(providerID)]
	if len(catalog) == 0 {
		return ""
	}
	return catalog[0].APIName
}

func (s *modelCatalogService) GetModel(providerID, modelID string) (*models.LLMModel, error) {
	providerID = strings.TrimSpace(providerID)
	modelID = strings.TrimSpace(modelID)
	if providerID == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if modelID == "" {
		return nil, fmt.Errorf("model is required")
	}
	for _, mdl := range s.models[providerID] {
		if mdl.APIName == modelID {
			model := s.toLLMModel(mdl)
			return &model, nil
		}
	}
	return nil, fmt.Errorf("model %s not found for provider %s", modelID, providerID)
}

// DisplayName falls back to the raw id for models outside the catalog.
func (s *modelCatalogService) DisplayName(modelID string) string {
	if name, ok := s.displayNames[modelID]; ok {
		return name
	}
	return modelID
}

func (s *modelCatalogService) ProviderName(providerID string) string {
	if name, ok := s.providerNames[providerID]; ok && strings.TrimSpace(name) != "" {
		return name
	}
	return providerID
}

func (s *modelCatalogService) KeyURL(providerID string) string {
	return s.keyURLs[providerID]
}

func (s *modelCatalogService) toLLMModel(mdl catalogModel) models.LLMModel {
	display := mdl.DisplayName
	if display == "" {
		display = mdl.APIName
	}
	return models.LLMModel{
		ID:           mdl.APIName,
		DisplayName:  display,
		ProviderID:   mdl.ProviderID,
		ProviderName: s.ProviderName(mdl.ProviderID),
	}
}

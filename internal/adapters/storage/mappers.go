package storage

import (
	"github.com/aura-ide/aura/internal/domain"
)

// eventModelToDomain converts an EventModel (GORM) to domain.EventLogEntry
func eventModelToDomain(m EventModel) domain.EventLogEntry {
	return domain.EventLogEntry{
		At:       m.CreatedAt,
		Seq:      m.Seq,
		Severity: domain.Severity(m.Severity),
		Text:     m.Text,
	}
}

// domainToEventModel converts a domain.EventLogEntry to EventModel (GORM)
func domainToEventModel(sessionID string, e domain.EventLogEntry) EventModel {
	return EventModel{
		CreatedAt: e.At,
		Seq:       e.Seq,
		SessionID: sessionID,
		Severity:  string(e.Severity),
		Text:      e.Text,
	}
}

// runModelToDomain converts a RunModel (GORM) to domain.RunRecord
func runModelToDomain(m RunModel) domain.RunRecord {
	return domain.RunRecord{
		Accepted:     m.Accepted,
		CreatedAt:    m.CreatedAt,
		Description:  m.Description,
		Error:        m.Error,
		HasImage:     m.HasImage,
		ID:           m.ID,
		ModelID:      m.ModelID,
		Requirements: m.Requirements,
	}
}

// domainToRunModel converts a domain.RunRecord to RunModel (GORM)
func domainToRunModel(r domain.RunRecord) RunModel {
	return RunModel{
		Accepted:     r.Accepted,
		CreatedAt:    r.CreatedAt,
		Description:  r.Description,
		Error:        r.Error,
		HasImage:     r.HasImage,
		ID:           r.ID,
		ModelID:      r.ModelID,
		Requirements: r.Requirements,
	}
}

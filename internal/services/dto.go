package services

import "github.com/aura-ide/aura/internal/domain"

// Snapshot is the tree and status fetched together
type Snapshot struct {
	Status    *domain.PipelineStatus
	StatusErr error
	Tree      []domain.TreeNode
	TreeErr   error
}

// StartRunParams contains parameters for starting a pipeline run
type StartRunParams struct {
	Description  string
	ImagePath    string
	ModelID      string
	Requirements string
}

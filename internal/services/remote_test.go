package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aura-ide/aura/internal/domain"
	portsmocks "github.com/aura-ide/aura/internal/ports/mocks"
)

func TestRemoteService_ValidatesPaths(t *testing.T) {
	gateway := portsmocks.NewMockRemoteGateway(t)
	service := NewRemoteService(gateway)
	ctx := context.Background()

	_, err := service.ReadFile(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrEmptyPath)
	assert.ErrorIs(t, service.WriteFile(ctx, "", "x"), domain.ErrEmptyPath)
	assert.ErrorIs(t, service.DeleteFile(ctx, "\t"), domain.ErrEmptyPath)
	_, err = service.InvokeTool(ctx, "", "main.py")
	assert.Error(t, err)
}

func TestRemoteService_PassesCommandVerbatim(t *testing.T) {
	gateway := portsmocks.NewMockRemoteGateway(t)
	command := `echo "$HOME" && rm -rf ./build; ls | wc -l`
	gateway.EXPECT().RunCommand(mock.Anything, command).
		Return(&domain.CommandResult{Output: "3\n"}, nil)

	result, err := NewRemoteService(gateway).RunCommand(context.Background(), command)

	require.NoError(t, err)
	assert.Equal(t, "3\n", result.Output)
}

func TestRemoteService_StartRun(t *testing.T) {
	tests := []struct {
		name     string
		params   StartRunParams
		expected domain.RunRequest
	}{
		{
			name:     "default model",
			params:   StartRunParams{Description: "todo app", Requirements: "fast"},
			expected: domain.RunRequest{Description: "todo app", Requirements: "fast", ModelID: domain.DefaultModelID},
		},
		{
			name:     "explicit model",
			params:   StartRunParams{Description: "game", ModelID: " gemini-1.5-pro "},
			expected: domain.RunRequest{Description: "game", ModelID: "gemini-1.5-pro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := portsmocks.NewMockRemoteGateway(t)
			gateway.EXPECT().StartRun(mock.Anything, tt.expected).Return(nil)

			req, err := NewRemoteService(gateway).StartRun(context.Background(), tt.params)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestRemoteService_StartRunWithImage(t *testing.T) {
	// smallest valid PNG header is enough for content sniffing
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	path := filepath.Join(t.TempDir(), "sketch.png")
	require.NoError(t, os.WriteFile(path, png, 0o644))

	gateway := portsmocks.NewMockRemoteGateway(t)
	gateway.EXPECT().StartRun(mock.Anything, mock.MatchedBy(func(req domain.RunRequest) bool {
		return strings.HasPrefix(req.ImageData, "data:image/png;base64,")
	})).Return(nil)

	req, err := NewRemoteService(gateway).StartRun(context.Background(), StartRunParams{
		Description: "ui from sketch",
		ImagePath:   path,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, req.ImageData)
}

func TestLoadImageDataURL_RejectsNonImages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o644))

	_, err := LoadImageDataURL(path)
	assert.ErrorContains(t, err, "not an image")

	_, err = LoadImageDataURL(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestRemoteService_SnapshotKeepsPartialResults(t *testing.T) {
	gateway := portsmocks.NewMockRemoteGateway(t)
	gateway.EXPECT().ListTree(mock.Anything).
		Return([]domain.TreeNode{{Name: "main.py", Path: "main.py"}}, nil)
	gateway.EXPECT().FetchStatus(mock.Anything).
		Return(nil, errors.New("connection refused"))

	snapshot := NewRemoteService(gateway).Snapshot(context.Background())

	assert.NoError(t, snapshot.TreeErr)
	assert.Len(t, snapshot.Tree, 1)
	assert.Error(t, snapshot.StatusErr)
	assert.Nil(t, snapshot.Status)
}

func TestRemoteService_ListTreeWrapsError(t *testing.T) {
	gateway := portsmocks.NewMockRemoteGateway(t)
	cause := errors.New("offline")
	gateway.EXPECT().ListTree(mock.Anything).Return(nil, cause)

	_, err := NewRemoteService(gateway).ListTree(context.Background())

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to list tree")
}

package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clawdesk/clawconf/internal/config"
	"github.com/clawdesk/clawconf/internal/contracts"
)

// BackupResponse is the response for POST /backups.
type BackupResponse struct {
	Body struct {
		Path string `doc:"Location of the new backup" json:"path"`
	}
}

// BackupsResponse is the response for GET /backups.
type BackupsResponse struct {
	Body struct {
		Backups []config.BackupInfo `doc:"Backups, newest first" json:"backups"`
	}
}

// RestoreRequest is the request for POST /backups/restore.
type RestoreRequest struct {
	Body struct {
		Path string `doc:"Location of the backup to restore" json:"path" minLength:"1"`
	}
}

// RegisterBackupRoutes sets up the backup API endpoints.
func RegisterBackupRoutes(routerAPI huma.API, manager contracts.BackupManager, apiPathPrefix string) {
	backupsAPI := huma.NewGroup(routerAPI, apiPathPrefix)
	tags := []string{"Backups"}

	huma.Register(
		backupsAPI,
		huma.Operation{
			OperationID:   "createBackup",
			Method:        http.MethodPost,
			Summary:       "Back up the config file",
			Tags:          tags,
			DefaultStatus: http.StatusCreated,
		},
		func(ctx context.Context, _ *struct{}) (*BackupResponse, error) {
			return handleCreateBackup(manager)
		},
	)

	huma.Register(
		backupsAPI,
		huma.Operation{
			OperationID: "listBackups",
			Method:      http.MethodGet,
			Summary:     "List backups",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*BackupsResponse, error) {
			return handleListBackups(manager)
		},
	)

	huma.Register(
		backupsAPI,
		huma.Operation{
			OperationID:   "restoreBackup",
			Method:        http.MethodPost,
			Path:          "/restore",
			Summary:       "Replace the config file with a backup",
			Tags:          tags,
			DefaultStatus: http.StatusNoContent,
		},
		func(ctx context.Context, input *RestoreRequest) (*struct{}, error) {
			return handleRestoreBackup(manager, input.Body.Path)
		},
	)
}

func handleCreateBackup(manager contracts.BackupManager) (*BackupResponse, error) {
	path, err := manager.Backup()
	if err != nil {
		return nil, err
	}

	resp := &BackupResponse{}
	resp.Body.Path = path

	return resp, nil
}

func handleListBackups(manager contracts.BackupManager) (*BackupsResponse, error) {
	backups, err := manager.ListBackups()
	if err != nil {
		return nil, err
	}

	resp := &BackupsResponse{}
	resp.Body.Backups = backups

	return resp, nil
}

func handleRestoreBackup(manager contracts.BackupManager, path string) (*struct{}, error) {
	if err := manager.Restore(path); err != nil {
		return nil, err
	}

	return nil, nil
}

package utils

import (
	"fmt"
	"strings"
	"time"

	"healthcamp-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateLabExportObjectName builds lab-exports/<location|all>_<timestamp>.json.
func GenerateLabExportObjectName(location string, generatedAt time.Time) string {
	scope := constvars.LabExportAllLocations
	if location != "" {
		scope = strings.ReplaceAll(strings.TrimSpace(location), " ", "_")
		scope = strings.ReplaceAll(scope, "/", "_")
	}
	return fmt.Sprintf(constvars.LabExportFileNameFormat,
		constvars.LabExportObjectPrefix,
		scope,
		generatedAt.UTC().Format(constvars.LabExportTimeFormat),
	)
}

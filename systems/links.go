package systems

import (
	"strings"

	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/log"
)

// UpgradeURL is the version check page for the running build.
func UpgradeURL(version string) string {
	return cfg.Frontend.UpgradeURL + strings.ReplaceAll(version, " ", "_")
}

// openLink hands url to the OS. A failure is not worth interrupting the
// menu for.
func openLink(svc *components.ServicesData, url string) {
	if svc.OpenURL == nil {
		return
	}
	if err := svc.OpenURL(url); err != nil {
		log.Debug("[frontend] could not open %s: %v", url, err)
	}
}

package install

import (
	"os/exec"
	"runtime"

	"jonnyzzz.com/nerdfonts/logging"
)

// RefreshFontCache runs fc-cache on Linux so fontconfig picks up the font
// directory. It is best effort: a missing or failing fc-cache is only logged.
func RefreshFontCache(fontDir string) {
	logger := logging.GetLogger("fontcache")
	if runtime.GOOS != "linux" {
		logger.Debug().Str("os", runtime.GOOS).Msg("Font cache refresh is only done on Linux")
		return
	}

	path, err := exec.LookPath("fc-cache")
	if err != nil {
		logger.Info().Err(err).Msg("fc-cache not found, skipping font cache refresh")
		return
	}

	out, err := exec.Command(path, "-f", fontDir).CombinedOutput()
	if err != nil {
		logger.Warn().Err(err).Str("output", string(out)).Msg("Failed to refresh font cache")
		return
	}
	logger.Info().Str("dir", fontDir).Msg("Font cache refreshed")
}

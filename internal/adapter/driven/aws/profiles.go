package aws

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var profileRegex = regexp.MustCompile(`\[([^]]+)\]`)

// ListProfiles lê os perfis declarados em ~/.aws/credentials e ~/.aws/config.
// Sem nenhum arquivo, apenas "default" é retornado.
func ListProfiles(homeDir string) []string {
	var profiles []string

	parseFile := func(path string, isConfig bool) {
		content, err := os.ReadFile(path)
		if err != nil {
			return
		}
		for _, match := range profileRegex.FindAllStringSubmatch(string(content), -1) {
			name := match[1]
			if isConfig {
				name = strings.TrimPrefix(name, "profile ")
			}
			profiles = append(profiles, strings.TrimSpace(name))
		}
	}

	parseFile(filepath.Join(homeDir, ".aws", "credentials"), false)
	parseFile(filepath.Join(homeDir, ".aws", "config"), true)

	if len(profiles) == 0 {
		return []string{"default"}
	}

	profiles = lo.Uniq(profiles)
	sort.Strings(profiles)
	return profiles
}

// profileKnown informa se o perfil existe na configuração local da AWS.
// Quando a pasta home não pode ser lida, a decisão fica com o SDK.
func profileKnown(profile string) bool {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return true
	}
	return lo.Contains(ListProfiles(homeDir), profile)
}

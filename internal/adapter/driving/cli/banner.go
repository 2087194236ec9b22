package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/energy-revenue-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(_ string) {
	banner := `
     ______                                ____                                      
    / ____/___  ___  _________ ___  __    / __ \___ _   _____  ____  __  _____      
   / __/ / __ \/ _ \/ ___/ __ '/ / / /   / /_/ / _ \ | / / _ \/ __ \/ / / / _ \     
  / /___/ / / /  __/ /  / /_/ / /_/ /   / _, _/  __/ |/ /  __/ / / / /_/ /  __/     
 /_____/_/ /_/\___/_/   \__, /\__, /   /_/ |_|\___/|___/\___/_/ /_/\__,_/\___/      
                       /____//____/                                                  
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))
	fmt.Println(blue(fmt.Sprintf("Energy Revenue Dashboard CLI (v%s)", version.FormatVersion())))
}

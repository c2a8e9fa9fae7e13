package cli

import (
	"fmt"
	"strings"

	"github.com/ygorazambuja/pubspec-platform/pkg/analysis"
	"github.com/ygorazambuja/pubspec-platform/pkg/compat"
)

// renderReport prints the styled compatibility report to stdout.
func renderReport(a *analysis.Analysis, project string) {
	title := "Platform compatibility"
	if project != "" {
		title += " — " + project
	}
	fmt.Println(styleTitle.Render(title))
	printKeyValue("targets", targetsLine(a.Config))
	fmt.Println()

	counts := a.Counts()
	fmt.Printf("%s %s   %s %s   %s %s\n\n",
		statusIcon(compat.StatusFull), styleValue.Render(fmt.Sprintf("%d full", counts[compat.StatusFull])),
		statusIcon(compat.StatusPartial), styleValue.Render(fmt.Sprintf("%d partial", counts[compat.StatusPartial])),
		statusIcon(compat.StatusNone), styleValue.Render(fmt.Sprintf("%d none", counts[compat.StatusNone])))

	renderBucket("Dependencies", a.Dependencies)
	renderBucket("Dev dependencies", a.DevDependencies)
}

func renderBucket(label string, pkgs []analysis.Package) {
	if len(pkgs) == 0 {
		return
	}
	printSection("%s (%d)", label, len(pkgs))

	width := 0
	for _, pkg := range pkgs {
		width = max(width, len(pkg.Name))
	}

	for _, pkg := range pkgs {
		line := fmt.Sprintf("  %s %-*s", statusIcon(pkg.Status), width, pkg.Name)
		if missing := missingLine(pkg.Verdict); missing != "" {
			line += "  " + styleDim.Render("missing: "+missing)
		}
		fmt.Println(line)
	}
	fmt.Println()
}

// missingLine joins the missing platforms and SDKs for display, the two
// dimensions separated by a dot.
func missingLine(v compat.Verdict) string {
	var parts []string
	if len(v.MissingPlatforms) > 0 {
		parts = append(parts, strings.Join(v.MissingPlatforms, ", "))
	}
	if len(v.MissingSDKs) > 0 {
		parts = append(parts, strings.Join(v.MissingSDKs, ", "))
	}
	return strings.Join(parts, " · ")
}

func targetsLine(cfg compat.Config) string {
	platforms := strings.Join(cfg.TargetPlatforms, ", ")
	sdks := strings.Join(cfg.TargetSDKs, ", ")
	switch {
	case platforms == "" && sdks == "":
		return styleDim.Render("(none)")
	case sdks == "":
		return platforms
	case platforms == "":
		return sdks
	default:
		return platforms + " · " + sdks
	}
}

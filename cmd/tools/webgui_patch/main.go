package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"webguipatch/util"
	"webguipatch/webgui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	if len(os.Args) == 2 && isVersionArg(os.Args[1]) {
		fmt.Println(util.BuildInfo())
		return
	}

	fs := pflag.NewFlagSet("webgui_patch", pflag.ExitOnError)
	path := fs.StringP("file", "f", defaultSourcePath(), "generated source file holding GUI_HTML")
	dryRun := fs.Bool("dry-run", false, "run every stage but do not rewrite the file")
	_ = fs.Parse(os.Args[1:])

	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	logrus.Debugln("[Patch]", util.BuildInfo())

	report, err := webgui.Run(*path, webgui.Options{DryRun: *dryRun})
	if err != nil {
		if errors.Is(err, webgui.ErrMissingAsset) {
			logrus.Fatalln("could not find GUI_HTML array in", *path)
		}
		logrus.Fatalln(err)
	}
	if report.Written {
		fmt.Printf("Done! Updated %s\n", *path)
	}
}

func isVersionArg(arg string) bool {
	switch strings.TrimSpace(strings.ToLower(arg)) {
	case "version", "-v", "--version", "-version":
		return true
	default:
		return false
	}
}

func defaultSourcePath() string {
	if v := strings.TrimSpace(os.Getenv("WEBGUI_PATH")); v != "" {
		return v
	}
	return webgui.DefaultSourcePath
}

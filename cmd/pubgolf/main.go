package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/abrezinsky/pubgolf/internal/app"
	"github.com/abrezinsky/pubgolf/internal/auth"
	"github.com/abrezinsky/pubgolf/internal/logger"
	"github.com/abrezinsky/pubgolf/web"
)

// ANSI escape codes
const (
	clearLine = "\033[2K"
	moveUp    = "\033[%dA"
	reset     = "\033[0m"
	yellow    = "\033[33m"
	red       = "\033[31m"
	green     = "\033[32m"
	cyan      = "\033[36m"
	bold      = "\033[1m"
)

// showStartupAnimation displays the PubGolf logo, then putts a ball across
// the banner unless skipPutt is set
func showStartupAnimation(skipPutt bool) {
	width := 62
	border := ""
	for i := 0; i < width; i++ {
		border += "═"
	}

	// Logo centered in 62 chars
	logo := []string{
		"      ____        _      ____       _  __            ",
		"     |  _ \\ _   _| |__  / ___| ___ | |/ _|           ",
		"     | |_) | | | | '_ \\| |  _ / _ \\| | |_            ",
		"     |  __/| |_| | |_) | |_| | (_) | |  _|           ",
		"     |_|    \\__,_|_.__/ \\____|\\___/|_|_|             ",
		"                                                     ",
	}

	fmt.Printf("\n  %s╔%s╗%s\n", cyan, border, reset)
	for _, line := range logo {
		for len(line) < width {
			line += " "
		}
		fmt.Printf("  %s║%s%s%s║%s\n", cyan, yellow, line, cyan, reset)
	}
	fmt.Printf("  %s╚%s╝%s\n", cyan, border, reset)

	if skipPutt {
		fmt.Print("\n")
		return
	}

	// Swap the bottom border for a divider and putt a ball toward the flag
	fmt.Printf(moveUp, 1)
	fmt.Printf("%s  %s╠%s╣%s\n", clearLine, cyan, border, reset)

	// Ball is "o", flag is "|>", hole sits at the right edge
	flagPos := width - 3
	for pos := 0; pos <= flagPos-2; pos += 3 {
		fairway := ""
		for j := 0; j < pos; j++ {
			fairway += " "
		}
		gap := ""
		for j := 0; j < flagPos-pos-3; j++ {
			gap += " "
		}
		fmt.Printf("%s  %s║%s%so%s%s%s|>%s ║%s\n", clearLine, cyan, fairway, yellow, reset, gap, green, cyan, reset)
		fmt.Printf("%s  %s╚%s╝%s\n", clearLine, cyan, border, reset)
		if pos+3 <= flagPos-2 {
			fmt.Printf(moveUp, 2)
		}
		time.Sleep(60 * time.Millisecond)
	}
	fmt.Print("\n")
}

var (
	version = "dev"
)

// cycleLogLevel cycles through debug -> info -> warn -> error
func cycleLogLevel(appLog *logger.SlogLogger) {
	current := appLog.GetLevel()
	var next string

	switch current.String() {
	case "DEBUG":
		next = "info"
	case "INFO":
		next = "warn"
	case "WARN":
		next = "error"
	case "ERROR":
		next = "debug"
	default:
		next = "info"
	}

	appLog.SetLevel(logger.ParseLevel(next))
	fmt.Printf("%sLog level: %s%s%s\n", green, yellow, next, reset)
}

// printKeyboardHelp displays all available keyboard shortcuts
func printKeyboardHelp() {
	fmt.Printf("\n%s%s  Keyboard Shortcuts:%s\n", bold, green, reset)
	fmt.Printf("    %sa%s      - Open organizer page in browser\n", cyan, reset)
	fmt.Printf("    %ss%s      - Open live scorecard in browser\n", cyan, reset)
	fmt.Printf("    %sh%s      - Toggle HTTP request logging\n", cyan, reset)
	fmt.Printf("    %sl%s      - Cycle log level (debug → info → warn → error)\n", cyan, reset)
	fmt.Printf("    %sq%s      - Quit server\n", cyan, reset)
	fmt.Printf("    %s?%s      - Show this help\n\n", cyan, reset)
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "pubgolf.db", "SQLite database path")
	adminPw := flag.String("adminpw", "", "Organizer password (auto-generated if not set)")
	logLevel := flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
	noAnimate := flag.Bool("noanimate", false, "Show logo only, skip putt animation")
	noKeyboard := flag.Bool("nokeyboard", false, "Disable keyboard shortcuts")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `PubGolf - Pub Crawl Scoring System

Usage:
  pubgolf [options]

Options:
  -port int      HTTP server port (default 8080)
  -db string     SQLite database path (default "pubgolf.db")
  -adminpw str   Organizer password (auto-generated if not set)
  -loglevel str  Log level: debug, info, warn, error (default "info")
  -noanimate     Show logo only, skip putt animation
  -nokeyboard    Disable keyboard shortcuts
  -version       Show version and exit
  -help          Show this help message

Keyboard Shortcuts (when enabled):
  a              Open organizer page in browser
  s              Open live scorecard in browser
  h              Toggle HTTP request logging
  l              Cycle log level (debug → info → warn → error)
  q              Quit server
  ?              Show keyboard help

Examples:
  pubgolf                            # Run on port 8080 with pubgolf.db
  pubgolf -port 9000                 # Run on port 9000
  pubgolf -db /data/crawl.db         # Use custom database path
  pubgolf -adminpw secret123         # Use specific organizer password
  pubgolf -nokeyboard                # Disable keyboard shortcuts

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("pubgolf %s\n", version)
		os.Exit(0)
	}

	// Show startup animation or just logo
	showStartupAnimation(*noAnimate)

	// Setup organizer authentication
	password := *adminPw
	if password == "" {
		password = auth.GeneratePassword()
	}
	adminAuth := auth.New(password)

	// Create logger with specified level
	appLog := logger.NewWithLevel(logger.ParseLevel(*logLevel))

	a, err := app.New(appLog, *dbPath, web.GetTemplatesFS(), web.GetStaticFS(), adminAuth)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", *port)
	appLog.Info("Organizer password", "password", password)

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Run(addr)
	}()

	// Wait a moment for server to start
	time.Sleep(100 * time.Millisecond)

	baseURL := fmt.Sprintf("http://localhost:%d", *port)

	// Print keyboard shortcuts and start listener (unless disabled)
	if !*noKeyboard {
		printKeyboardHelp()
		go listenForKeyboard(baseURL, appLog)
	} else {
		fmt.Printf("\n%sKeyboard shortcuts disabled (use -nokeyboard=false to enable)%s\n\n", yellow, reset)
	}

	// Wait for server error or signal
	if err := <-serverErr; err != nil {
		log.Fatal(err)
	}
}

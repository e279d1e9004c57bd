package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/astroai/astroai-cli/internal/client/nav"
)

// Output seams for user-facing text. In tests, replace them with stubs.
var (
	printlnFn = fmt.Println
	printfFn  = fmt.Printf
)

// execIface defines the command surface the REPL needs to operate. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Screen() nav.Screen
	StatusLine() string

	GoLogin()
	GoRegister()
	Back()
	OpenSettings()

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error

	Horoscope(ctx context.Context) error
	Compatibility(ctx context.Context) error
	FriendAdvice(ctx context.Context) error

	ShowProfile(ctx context.Context) error
	RefreshProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChooseTone(ctx context.Context, name string) error
}

// runREPL reads commands line by line and dispatches them according to the
// current screen, so the command set the user sees always matches where the
// navigation state machine says they are. Unknown commands are reported back.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printfFn("astro %s> ", a.StatusLine())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a.Screen())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		switch a.Screen() {
		case nav.ScreenWelcome:
			switch cmd {
			case "login":
				a.GoLogin()
				_ = a.Login(ctx)
			case "register":
				a.GoRegister()
				_ = a.Register(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case nav.ScreenLogin:
			switch cmd {
			case "login", "retry":
				_ = a.Login(ctx)
			case "register":
				a.GoRegister()
				_ = a.Register(ctx)
			case "back":
				a.Back()
			default:
				printlnFn("Unknown command:", cmd)
			}

		case nav.ScreenRegister:
			switch cmd {
			case "register", "retry":
				_ = a.Register(ctx)
			case "login":
				a.GoLogin()
				_ = a.Login(ctx)
			case "back":
				a.Back()
			default:
				printlnFn("Unknown command:", cmd)
			}

		case nav.ScreenDashboard:
			switch cmd {
			case "horoscope":
				_ = a.Horoscope(ctx)
			case "compat":
				_ = a.Compatibility(ctx)
			case "advice":
				_ = a.FriendAdvice(ctx)
			case "profile":
				_ = a.ShowProfile(ctx)
			case "refresh":
				_ = a.RefreshProfile(ctx)
			case "settings":
				a.OpenSettings()
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}

		case nav.ScreenSettings:
			switch cmd {
			case "tone":
				name := ""
				if len(args) > 0 {
					name = args[0]
				}
				_ = a.ChooseTone(ctx, name)
			case "edit":
				_ = a.EditProfile(ctx)
			case "back":
				a.Back()
			case "logout":
				_ = a.Logout(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

func printHelp(screen nav.Screen) {
	switch screen {
	case nav.ScreenWelcome:
		printlnFn("Available commands: login, register, exit")
	case nav.ScreenLogin:
		printlnFn("Available commands: login, register, back, exit")
	case nav.ScreenRegister:
		printlnFn("Available commands: register, login, back, exit")
	case nav.ScreenDashboard:
		printlnFn("Available commands: horoscope, compat, advice, profile, refresh, settings, logout, exit")
	case nav.ScreenSettings:
		printlnFn("Available commands: tone [serious|humorous|soul], edit, back, logout, exit")
	}
}

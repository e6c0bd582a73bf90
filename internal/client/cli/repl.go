package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	currentRole() models.Role
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Explore(ctx context.Context) error
	Browse(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	RemoveFromCart(ctx context.Context, args []string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Favorites(ctx context.Context) error
	Favorite(ctx context.Context, args []string) error
	Unfavorite(ctx context.Context, args []string) error
	Downloads(ctx context.Context) error
	Download(ctx context.Context, args []string) error
	Purchased(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Vendor(ctx context.Context, args []string) error
	Admin(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the Pixelmart CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Anonymous (catalog and cart work without an account):
//	  - help                 — show available commands
//	  - register / login     — create an account / authenticate
//	  - explore              — landing view: products and categories
//	  - browse [category]    — list products, optionally by category
//	  - search <query>       — full-text product search
//	  - show <id>            — single product view
//	  - cart | add | remove | clear — local cart operations
//	  - exit | quit          — leave the program
//
//	Logged in, additionally:
//	  - checkout             — place an order from the cart
//	  - favs | fav | unfav   — favorites collection
//	  - downloads | download — downloads collection
//	  - purchased            — purchase history
//	  - profile | passwd     — account settings
//	  - whoami | logout
//
//	Role-gated:
//	  - vendor <subcommand>  — vendor surface (vendors and admins)
//	  - admin <subcommand>   — moderation surface (admins)
//
// Any errors returned by command handlers are reported here in one line;
// handlers log details themselves. This keeps the loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pixelmart %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			printHelp(a)

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "explore":
			err = a.Explore(ctx)

		case "b", "browse":
			err = a.Browse(ctx, args)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			err = a.Browse(ctx, append([]string{""}, args...))

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <product-id>")
				continue
			}
			err = a.Show(ctx, args)

		case "cart":
			err = a.ShowCart(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <product-id> [quantity]")
				continue
			}
			err = a.AddToCart(ctx, args)

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <product-id>")
				continue
			}
			err = a.RemoveFromCart(ctx, args)

		case "clear":
			err = a.ClearCart(ctx)

		case "checkout":
			err = a.Checkout(ctx)

		case "favs":
			err = a.Favorites(ctx)

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <product-id>")
				continue
			}
			err = a.Favorite(ctx, args)

		case "unfav":
			if len(args) == 0 {
				printlnFn("Usage: unfav <product-id>")
				continue
			}
			err = a.Unfavorite(ctx, args)

		case "downloads":
			err = a.Downloads(ctx)

		case "download":
			if len(args) == 0 {
				printlnFn("Usage: download <product-id> [order-id]")
				continue
			}
			err = a.Download(ctx, args)

		case "purchased":
			err = a.Purchased(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "update":
			err = a.UpdateProfile(ctx)

		case "passwd":
			err = a.ChangePassword(ctx)

		case "vendor":
			err = a.Vendor(ctx, args)

		case "admin":
			err = a.Admin(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Catalog: explore, (b)rowse [category], search <query>, show <id>")
	printlnFn("Cart: cart, add <id> [qty], remove <id>, clear")
	if !a.isLoggedIn() {
		printlnFn("Account: register, login, exit")
		return
	}
	printlnFn("Orders: checkout, purchased")
	printlnFn("Collections: favs, fav <id>, unfav <id>, downloads, download <id> [order]")
	printlnFn("Account: whoami, profile, update, passwd, logout, exit")
	switch a.currentRole() {
	case models.RoleVendor:
		printlnFn("Vendor: vendor profile [set]|products|orders|add|update|delete|status")
	case models.RoleAdmin:
		printlnFn("Vendor: vendor profile [set]|products|orders|add|update|delete|status")
		printlnFn("Admin: admin dashboard|vendors|approve|block|reject|users|blockuser|unblockuser|products")
	}
}

package cli

import (
	"context"
	"fmt"
)

// Admin dispatches the moderation subcommands. The service gate rejects
// non-admin sessions before any network call is made.
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: admin dashboard|vendors|approve|block|reject|users|blockuser|unblockuser|products")
		return nil
	}

	switch args[0] {
	case "dashboard":
		return a.adminDashboard(ctx)

	case "products":
		// Unfiltered listing: products arrive in every moderation status.
		products, err := a.admin.Products(ctx)
		if err != nil {
			return err
		}
		for _, p := range products {
			printlnFn(formatProduct(p))
		}
		return nil

	case "vendors":
		vendors, err := a.admin.Vendors(ctx)
		if err != nil {
			return err
		}
		for _, v := range vendors {
			printlnFn(fmt.Sprintf("%s  %-25s  %s  %s", v.ID, v.Name, v.Email, v.Status))
		}
		return nil

	case "approve", "block", "reject":
		if len(args) < 2 {
			printlnFn("Usage: admin", args[0], "<vendor-id>")
			return nil
		}
		switch args[0] {
		case "approve":
			return a.admin.ApproveVendor(ctx, args[1])
		case "block":
			return a.admin.BlockVendor(ctx, args[1])
		default:
			return a.admin.RejectVendor(ctx, args[1])
		}

	case "users":
		users, err := a.admin.Users(ctx)
		if err != nil {
			return err
		}
		for _, u := range users {
			printlnFn(fmt.Sprintf("%s  %-25s  %s  %s", u.ID, u.Name, u.Email, u.Role))
		}
		return nil

	case "blockuser", "unblockuser":
		if len(args) < 2 {
			printlnFn("Usage: admin", args[0], "<user-id>")
			return nil
		}
		if args[0] == "blockuser" {
			return a.admin.BlockUser(ctx, args[1])
		}
		return a.admin.UnblockUser(ctx, args[1])

	default:
		printlnFn("Unknown admin subcommand:", args[0])
		return nil
	}
}

func (a *App) adminDashboard(ctx context.Context) error {
	dash, err := a.admin.LoadDashboard(ctx)
	if err != nil {
		return err
	}
	s := dash.Stats
	printlnFn(fmt.Sprintf("Users: %d  Vendors: %d  Products: %d  Orders: %d  Revenue: $%.2f",
		s.Users, s.Vendors, s.Products, s.Orders, s.Revenue))
	printlnFn(fmt.Sprintf("%d vendors, %d products listed (all statuses)", len(dash.Vendors), len(dash.Products)))
	return nil
}

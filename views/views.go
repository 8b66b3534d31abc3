// Package views implements the stock bareblog templates as hand-written
// templ components. A site wanting a different look swaps out any subset
// of these through bareblog.ViewFuncs.
package views

import "github.com/eringen/bareblog"

// Funcs returns the stock template set, ready to pass to bareblog.New.
func Funcs() bareblog.ViewFuncs {
	return bareblog.ViewFuncs{
		Home:          Home,
		Post:          Post,
		Page:          Page,
		AdminLogin:    AdminLogin,
		AdminPosts:    AdminPosts,
		AdminEdit:     AdminEdit,
		AdminSettings: AdminSettings,
		AdminImages:   AdminImages,
		NotFound:      NotFound,
		ServerError:   ServerError,
	}
}

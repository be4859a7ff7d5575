package layout

import "github.com/skelgen/cli/internal/scaffold"

// adminPanelTree is the web admin panel skeleton rooted at
// admin-panel/. App-router pages and API routes come first, then the
// shared component, type and infrastructure directories.
var adminPanelTree = scaffold.Tree{
	Base: "admin-panel",
	Nodes: []scaffold.Node{
		scaffold.Dir("app", join(
			scaffold.Files(
				"globals.css",
				"layout.tsx",
				"page.tsx",
				"loading.tsx",
				"error.tsx",
				"not-found.tsx",
			),
			[]scaffold.Node{
				scaffold.Dir("login",
					scaffold.File("page.tsx"),
					scaffold.Dir("components", scaffold.File("login-form.tsx")),
				),
				scaffold.Dir("dashboard",
					scaffold.File("page.tsx"),
					scaffold.File("layout.tsx"),
					scaffold.Dir("components", scaffold.Files(
						"dashboard-overview.tsx",
						"metrics-cards.tsx",
						"charts-section.tsx",
						"recent-activity.tsx",
					)...),
				),
				scaffold.Dir("users",
					scaffold.File("page.tsx"),
					scaffold.Dir("[id]",
						scaffold.File("page.tsx"),
						scaffold.Dir("edit", scaffold.File("page.tsx")),
					),
					scaffold.Dir("components", scaffold.Files(
						"users-table.tsx",
						"user-profile.tsx",
						"kyc-verification.tsx",
						"user-actions.tsx",
						"transaction-history.tsx",
					)...),
				),
				scaffold.Dir("transactions",
					scaffold.File("page.tsx"),
					scaffold.Dir("deposits", scaffold.File("page.tsx")),
					scaffold.Dir("withdrawals", scaffold.File("page.tsx")),
					scaffold.Dir("components", scaffold.Files(
						"transactions-table.tsx",
						"deposit-approval.tsx",
						"withdrawal-approval.tsx",
						"transaction-filters.tsx",
					)...),
				),
				scaffold.Dir("referrals",
					scaffold.File("page.tsx"),
					scaffold.Dir("components", scaffold.Files(
						"referrals-overview.tsx",
						"referrals-table.tsx",
						"bonus-management.tsx",
					)...),
				),
				scaffold.Dir("plans",
					scaffold.File("page.tsx"),
					// [id] has no page of its own, only the edit subpage.
					scaffold.Dir("[id]",
						scaffold.Dir("edit", scaffold.File("page.tsx")),
					),
					scaffold.Dir("components", scaffold.Files(
						"plans-table.tsx",
						"plan-form.tsx",
						"plan-assignment.tsx",
					)...),
				),
				scaffold.Dir("loans",
					scaffold.File("page.tsx"),
					scaffold.Dir("applications", scaffold.File("page.tsx")),
					scaffold.Dir("[id]", scaffold.File("page.tsx")),
					scaffold.Dir("components", scaffold.Files(
						"loans-table.tsx",
						"loan-application-review.tsx",
						"emi-calculator.tsx",
						"credit-score-display.tsx",
						"repayment-schedule.tsx",
					)...),
				),
				scaffold.Dir("tasks",
					scaffold.File("page.tsx"),
					scaffold.Dir("components", scaffold.Files(
						"tasks-table.tsx",
						"task-form.tsx",
						"submissions-review.tsx",
					)...),
				),
				scaffold.Dir("notifications",
					scaffold.File("page.tsx"),
					scaffold.Dir("components", scaffold.Files(
						"notifications-list.tsx",
						"email-template.tsx",
						"notification-composer.tsx",
					)...),
				),
				scaffold.Dir("news",
					scaffold.File("page.tsx"),
					scaffold.Dir("create", scaffold.File("page.tsx")),
					scaffold.Dir("[id]",
						scaffold.Dir("edit", scaffold.File("page.tsx")),
					),
					scaffold.Dir("components", scaffold.Files(
						"news-table.tsx",
						"news-form.tsx",
					)...),
				),
				scaffold.Dir("support",
					scaffold.File("page.tsx"),
					scaffold.Dir("tickets",
						scaffold.File("page.tsx"),
						scaffold.Dir("[id]", scaffold.File("page.tsx")),
					),
					scaffold.Dir("chat", scaffold.File("page.tsx")),
					scaffold.Dir("faq", scaffold.File("page.tsx")),
					scaffold.Dir("components", scaffold.Files(
						"tickets-table.tsx",
						"ticket-details.tsx",
						"live-chat.tsx",
						"faq-manager.tsx",
					)...),
				),
				scaffold.Dir("audit",
					scaffold.File("page.tsx"),
					scaffold.Dir("components", scaffold.Files(
						"audit-logs.tsx",
						"activity-timeline.tsx",
					)...),
				),
				scaffold.Dir("api",
					scaffold.Dir("auth",
						scaffold.Dir("[...nextauth]", scaffold.File("route.ts")),
						scaffold.Dir("login", scaffold.File("route.ts")),
						scaffold.Dir("signup", scaffold.File("route.ts")),
						scaffold.Dir("device-check", scaffold.File("route.ts")),
					),
					scaffold.Dir("users",
						scaffold.File("route.ts"),
						scaffold.Dir("[id]",
							scaffold.File("route.ts"),
							scaffold.Dir("kyc", scaffold.File("route.ts")),
							scaffold.Dir("transactions", scaffold.File("route.ts")),
						),
						scaffold.Dir("bulk-actions", scaffold.File("route.ts")),
					),
					scaffold.Dir("transactions",
						scaffold.File("route.ts"),
						scaffold.Dir("deposits",
							scaffold.File("route.ts"),
							scaffold.Dir("approve", scaffold.File("route.ts")),
						),
						scaffold.Dir("withdrawals",
							scaffold.File("route.ts"),
							scaffold.Dir("approve", scaffold.File("route.ts")),
						),
					),
					scaffold.Dir("referrals",
						scaffold.File("route.ts"),
						scaffold.Dir("bonuses", scaffold.File("route.ts")),
					),
					scaffold.Dir("plans",
						scaffold.File("route.ts"),
						scaffold.Dir("[id]", scaffold.File("route.ts")),
					),
					scaffold.Dir("loans",
						scaffold.File("route.ts"),
						scaffold.Dir("applications", scaffold.File("route.ts")),
						scaffold.Dir("emi-calculator", scaffold.File("route.ts")),
						scaffold.Dir("[id]",
							scaffold.File("route.ts"),
							scaffold.Dir("repayment", scaffold.File("route.ts")),
						),
					),
					scaffold.Dir("tasks",
						scaffold.File("route.ts"),
						scaffold.Dir("submissions", scaffold.File("route.ts")),
					),
					scaffold.Dir("notifications",
						scaffold.File("route.ts"),
						scaffold.Dir("send", scaffold.File("route.ts")),
					),
					scaffold.Dir("news",
						scaffold.File("route.ts"),
						scaffold.Dir("[id]", scaffold.File("route.ts")),
					),
					scaffold.Dir("support",
						scaffold.Dir("tickets",
							scaffold.File("route.ts"),
							scaffold.Dir("[id]", scaffold.File("route.ts")),
						),
						scaffold.Dir("chat", scaffold.File("route.ts")),
						scaffold.Dir("faq", scaffold.File("route.ts")),
					),
					scaffold.Dir("audit", scaffold.File("route.ts")),
					scaffold.Dir("dashboard",
						scaffold.Dir("metrics", scaffold.File("route.ts")),
						scaffold.Dir("charts", scaffold.File("route.ts")),
					),
				),
			},
		)...),
		scaffold.Dir("components",
			scaffold.Dir("ui", scaffold.Files(
				"button.tsx",
				"input.tsx",
				"label.tsx",
				"card.tsx",
				"table.tsx",
				"dialog.tsx",
				"dropdown-menu.tsx",
				"form.tsx",
				"select.tsx",
				"textarea.tsx",
				"toast.tsx",
				"badge.tsx",
				"avatar.tsx",
				"separator.tsx",
				"skeleton.tsx",
				"alert.tsx",
				"tabs.tsx",
				"checkbox.tsx",
				"radio-group.tsx",
				"switch.tsx",
				"progress.tsx",
				"sheet.tsx",
				"calendar.tsx",
			)...),
			scaffold.Dir("layout", scaffold.Files(
				"header.tsx",
				"sidebar.tsx",
				"navigation.tsx",
				"breadcrumb.tsx",
				"footer.tsx",
			)...),
			scaffold.Dir("auth", scaffold.Files(
				"login-form.tsx",
				"protected-route.tsx",
				"role-guard.tsx",
			)...),
			scaffold.Dir("shared", scaffold.Files(
				"data-table.tsx",
				"pagination.tsx",
				"search-input.tsx",
				"date-picker.tsx",
				"loading-spinner.tsx",
				"error-boundary.tsx",
				"confirmation-dialog.tsx",
				"file-upload.tsx",
			)...),
			scaffold.Dir("charts", scaffold.Files(
				"line-chart.tsx",
				"bar-chart.tsx",
				"pie-chart.tsx",
				"area-chart.tsx",
			)...),
		),
		scaffold.Dir("types", scaffold.Files(
			"index.ts",
			"auth.ts",
			"user.ts",
			"transaction.ts",
			"referral.ts",
			"plan.ts",
			"loan.ts",
			"task.ts",
			"notification.ts",
			"news.ts",
			"support.ts",
			"dashboard.ts",
			"api.ts",
		)...),
		scaffold.Dir("lib", scaffold.Files(
			"auth.ts",
			"db.ts",
			"mongodb.ts",
			"device-detection.ts",
			"email.ts",
			"validation.ts",
			"utils.ts",
			"constants.ts",
			"permissions.ts",
			"rate-limit.ts",
			"encryption.ts",
			"api-helpers.ts",
		)...),
		scaffold.Dir("models", scaffold.Files(
			"Admin.ts",
			"User.ts",
			"Transaction.ts",
			"Referral.ts",
			"Plan.ts",
			"Loan.ts",
			"Task.ts",
			"Notification.ts",
			"News.ts",
			"SupportTicket.ts",
			"AuditLog.ts",
		)...),
		scaffold.Dir("middleware", scaffold.Files(
			"auth.ts",
			"rate-limit.ts",
			"device-check.ts",
			"validation.ts",
			"error-handler.ts",
		)...),
		scaffold.Dir("hooks", scaffold.Files(
			"use-auth.ts",
			"use-dashboard.ts",
			"use-users.ts",
			"use-transactions.ts",
			"use-loans.ts",
			"use-notifications.ts",
			"use-debounce.ts",
		)...),
		scaffold.Dir("providers", scaffold.Files(
			"auth-provider.tsx",
			"query-provider.tsx",
			"toast-provider.tsx",
			"theme-provider.tsx",
		)...),
		scaffold.Dir("utils", scaffold.Files(
			"api.ts",
			"formatters.ts",
			"validators.ts",
			"constants.ts",
			"helpers.ts",
			"date.ts",
		)...),
		scaffold.Dir("config", scaffold.Files(
			"database.ts",
			"auth.ts",
			"email.ts",
			"oauth.ts",
			"env.ts",
		)...),
		scaffold.Dir("docs",
			scaffold.Dir("api", scaffold.Files(
				"swagger.json",
				"README.md",
			)...),
			scaffold.Dir("setup", scaffold.Files(
				"installation.md",
				"configuration.md",
				"deployment.md",
			)...),
			scaffold.Dir("features", scaffold.Files(
				"authentication.md",
				"user-management.md",
				"loan-system.md",
				"device-limiting.md",
			)...),
		),
		scaffold.Dir("tests",
			scaffold.Dir("__mocks__"),
			scaffold.Dir("api", scaffold.Files(
				"auth.test.ts",
				"users.test.ts",
				"transactions.test.ts",
				"loans.test.ts",
			)...),
			scaffold.Dir("components", scaffold.Files(
				"login-form.test.tsx",
				"users-table.test.tsx",
				"dashboard.test.tsx",
			)...),
			scaffold.Dir("lib", scaffold.Files(
				"auth.test.ts",
				"device-detection.test.ts",
				"validation.test.ts",
			)...),
			scaffold.File("setup.ts"),
		),
		scaffold.Dir("scripts", scaffold.Files(
			"seed-data.ts",
			"migrate-db.ts",
			"generate-docs.ts",
			"setup-env.ts",
		)...),
		scaffold.Dir("public",
			scaffold.File("favicon.ico"),
			scaffold.File("manifest.json"),
			scaffold.Dir("icons"),
			scaffold.Dir("images"),
		),
	},
}

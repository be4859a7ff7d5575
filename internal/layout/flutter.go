package layout

import "github.com/skelgen/cli/internal/scaffold"

// flutterAppTree is the mobile app skeleton rooted at lib/. Entries are
// declared in generation order: root files first, then the core, data,
// domain, presentation and services subtrees.
var flutterAppTree = scaffold.Tree{
	Base: "lib",
	Nodes: join(
		scaffold.Files(
			"main.dart",
			"app.dart",
			"router.dart",
		),
		[]scaffold.Node{
			scaffold.Dir("core",
				scaffold.Dir("constants", scaffold.Files(
					"api_constants.dart",
					"app_constants.dart",
					"storage_keys.dart",
					"route_constants.dart",
				)...),
				scaffold.Dir("theme", scaffold.Files(
					"app_theme.dart",
					"colors.dart",
				)...),
				scaffold.Dir("utils", scaffold.Files(
					"device_utils.dart",
					"date_utils.dart",
					"validators.dart",
					"extensions.dart",
				)...),
				scaffold.Dir("errors", scaffold.Files(
					"exceptions.dart",
					"failures.dart",
				)...),
			),
			scaffold.Dir("data",
				scaffold.Dir("models",
					scaffold.Dir("auth", scaffold.Files(
						"login_request.dart",
						"login_response.dart",
						"signup_request.dart",
						"signup_response.dart",
					)...),
					scaffold.Dir("user", scaffold.Files(
						"user_model.dart",
						"profile_model.dart",
						"kyc_model.dart",
					)...),
					scaffold.Dir("transaction", scaffold.Files(
						"transaction_model.dart",
						"deposit_request.dart",
						"withdrawal_request.dart",
					)...),
					scaffold.Dir("loan", scaffold.Files(
						"loan_model.dart",
						"loan_request.dart",
						"emi_calculation.dart",
					)...),
					scaffold.Dir("plan", scaffold.File("plan_model.dart")),
					scaffold.Dir("notification", scaffold.File("notification_model.dart")),
					scaffold.Dir("support", scaffold.Files(
						"ticket_model.dart",
						"ticket_request.dart",
					)...),
					scaffold.Dir("news", scaffold.File("news_model.dart")),
					scaffold.Dir("referral", scaffold.File("referral_model.dart")),
					scaffold.Dir("dashboard", scaffold.File("dashboard_metrics.dart")),
				),
				scaffold.Dir("datasources",
					scaffold.Dir("remote", scaffold.Files(
						"api_client.dart",
						"auth_api.dart",
						"user_api.dart",
						"transaction_api.dart",
						"loan_api.dart",
						"plan_api.dart",
						"notification_api.dart",
						"support_api.dart",
						"news_api.dart",
						"referral_api.dart",
						"dashboard_api.dart",
					)...),
					scaffold.Dir("local", scaffold.Files(
						"storage_service.dart",
						"auth_storage.dart",
						"user_storage.dart",
						"app_data_storage.dart",
						"hive_adapters.dart",
					)...),
				),
				scaffold.Dir("repositories", scaffold.Files(
					"auth_repository.dart",
					"user_repository.dart",
					"transaction_repository.dart",
					"loan_repository.dart",
					"plan_repository.dart",
					"notification_repository.dart",
					"support_repository.dart",
					"news_repository.dart",
					"referral_repository.dart",
					"dashboard_repository.dart",
				)...),
			),
			scaffold.Dir("domain",
				scaffold.Dir("entities", scaffold.Files(
					"user_entity.dart",
					"transaction_entity.dart",
					"loan_entity.dart",
					"plan_entity.dart",
					"notification_entity.dart",
					"support_entity.dart",
					"news_entity.dart",
					"referral_entity.dart",
				)...),
				scaffold.Dir("usecases",
					scaffold.Dir("auth", scaffold.Files(
						"login_usecase.dart",
						"signup_usecase.dart",
						"logout_usecase.dart",
						"refresh_token_usecase.dart",
					)...),
					scaffold.Dir("user", scaffold.Files(
						"get_profile_usecase.dart",
						"update_profile_usecase.dart",
						"upload_kyc_usecase.dart",
					)...),
					scaffold.Dir("transaction", scaffold.Files(
						"get_transactions_usecase.dart",
						"create_deposit_usecase.dart",
						"create_withdrawal_usecase.dart",
					)...),
					scaffold.Dir("loan", scaffold.Files(
						"get_loans_usecase.dart",
						"apply_loan_usecase.dart",
						"calculate_emi_usecase.dart",
					)...),
					scaffold.Dir("dashboard", scaffold.File("get_dashboard_data_usecase.dart")),
				),
			),
			scaffold.Dir("presentation",
				scaffold.Dir("providers", scaffold.Files(
					"auth_provider.dart",
					"user_provider.dart",
					"transaction_provider.dart",
					"loan_provider.dart",
					"plan_provider.dart",
					"notification_provider.dart",
					"support_provider.dart",
					"news_provider.dart",
					"referral_provider.dart",
					"dashboard_provider.dart",
					"app_state_provider.dart",
				)...),
				scaffold.Dir("screens",
					scaffold.Dir("splash", scaffold.File("splash_screen.dart")),
					scaffold.Dir("auth", scaffold.Files(
						"login_screen.dart",
						"signup_screen.dart",
					)...),
					scaffold.Dir("dashboard", scaffold.File("dashboard_screen.dart")),
					scaffold.Dir("profile", scaffold.Files(
						"profile_screen.dart",
						"edit_profile_screen.dart",
						"kyc_screen.dart",
					)...),
					scaffold.Dir("transactions", scaffold.Files(
						"transactions_screen.dart",
						"deposit_screen.dart",
						"withdrawal_screen.dart",
					)...),
					scaffold.Dir("loans", scaffold.Files(
						"loans_screen.dart",
						"apply_loan_screen.dart",
						"loan_details_screen.dart",
						"emi_calculator_screen.dart",
					)...),
					scaffold.Dir("plans", scaffold.File("plans_screen.dart")),
					scaffold.Dir("notifications", scaffold.File("notifications_screen.dart")),
					scaffold.Dir("support", scaffold.Files(
						"support_screen.dart",
						"create_ticket_screen.dart",
						"ticket_details_screen.dart",
					)...),
					scaffold.Dir("news", scaffold.Files(
						"news_screen.dart",
						"news_details_screen.dart",
					)...),
					scaffold.Dir("referral", scaffold.File("referral_screen.dart")),
					scaffold.Dir("settings", scaffold.File("settings_screen.dart")),
				),
				scaffold.Dir("widgets",
					scaffold.Dir("common", scaffold.Files(
						"custom_app_bar.dart",
						"custom_bottom_nav.dart",
						"refresh_indicator_wrapper.dart",
						"error_widget.dart",
						"empty_state_widget.dart",
					)...),
					scaffold.Dir("transaction", scaffold.Files(
						"transaction_card.dart",
						"transaction_filter.dart",
					)...),
					scaffold.Dir("loan", scaffold.Files(
						"loan_card.dart",
						"emi_schedule_card.dart",
					)...),
					scaffold.Dir("notification", scaffold.File("notification_card.dart")),
					scaffold.Dir("dashboard", scaffold.Files(
						"balance_card.dart",
						"quick_actions.dart",
						"recent_transactions.dart",
					)...),
					scaffold.Dir("forms", scaffold.Files(
						"custom_text_field.dart",
						"custom_dropdown.dart",
						"file_upload_widget.dart",
					)...),
				),
			),
			scaffold.Dir("services", scaffold.Files(
				"api_service.dart",
				"storage_service.dart",
				"device_service.dart",
				"notification_service.dart",
				"biometric_service.dart",
			)...),
		},
	),
}

// join concatenates node slices, preserving order.
func join(groups ...[]scaffold.Node) []scaffold.Node {
	var nodes []scaffold.Node
	for _, g := range groups {
		nodes = append(nodes, g...)
	}
	return nodes
}

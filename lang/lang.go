package lang

import "fmt"

const En = "en"

var messages = map[string]map[string]string{
	En: {
		"menu_header":         "\n=== %s ===",
		"menu_line":           "%s: $%s",
		"ask_location":        "\nEnter your delivery location (%s): ",
		"invalid_location":    "Invalid location. Please enter a valid option.",
		"ask_hour":            "Enter current hour (24-hour format): ",
		"invalid_hour":        "Please enter a whole hour between 0 and 23.",
		"ask_student_id":      "Do you have a student ID? (yes/no): ",
		"ask_priority":        "Would you like priority delivery for an extra $%s? (yes/no): ",
		"invalid_yes_no":      "Please answer yes or no.",
		"ask_items":           "\nEnter items to order (type 'done' when finished):",
		"item_prompt":         "> ",
		"item_unavailable":    "'%s' is not available. Please choose from the menu.",
		"order_unavailable":   "One or more items are not available. Please check the menu.",
		"order_header":        "\n=== Order Summary ===",
		"order_id":            "Order ID: %s",
		"order_location":      "Delivery to: %s",
		"order_items":         "\nItems ordered:",
		"order_line":          "- %s: $%s",
		"order_subtotal":      "\nSubtotal: $%s",
		"order_discount":      "Student Discount Applied!",
		"order_priority":      "Priority Delivery Selected! (Additional $%s, reduces time by %d minutes)",
		"order_total":         "Total after discount: $%s",
		"order_eta":           "Estimated delivery time: %d minutes",
		"ask_rating":          "Please rate your delivery ( 1 - 5 stars): ",
		"rating_out_of_range": "Please enter a valid rating between 1 and 5",
		"rating_not_number":   "Invalid input. Please enter a number from 1 and 5",
		"rating_thanks":       "Thank you for your feedback! You rated us %d stars",
		"ask_budget":          "\nEnter a maximum price to search for affordable items: ",
		"invalid_budget":      "Please enter a non-negative amount, for example 3.50.",
		"search_header":       "\nItems under $%s:",
		"search_none":         "No items found within that price range.",
		"input_too_long":      "That line is too long, please try again.",
	},
}

// T returns the message for key formatted with args. Unknown keys come back as-is.
func T(key string, args ...interface{}) string {
	s, ok := messages[En][key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}

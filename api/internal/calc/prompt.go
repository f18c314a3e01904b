package calc

import "encoding/json"

// systemPrompt fixes the task rules: order of operations, the five problem
// categories the canvas can contain, and the strict output format. The
// variable context is appended per request by ComposeInstructions.
const systemPrompt = `You have been given an image with some mathematical expressions, equations, or graphical problems, and you need to solve them.
Note: use the PEMDAS rule for solving mathematical expressions. PEMDAS stands for the priority order: Parentheses, Exponents, Multiplication and Division (from left to right), Addition and Subtraction (from left to right).
For example:
Q. 2 + 3 * 2
3 * 2 => 6, 2 + 6 = 8
Q. 2 + 3 + 5 * 4 - 8 / 2
5 * 4 => 20, 8 / 2 => 4, 2 + 3 => 5, 5 + 20 => 25, 25 - 4 => 21
YOU CAN HAVE FIVE TYPES OF EQUATIONS/EXPRESSIONS IN THIS IMAGE, AND ONLY ONE CASE SHALL APPLY EVERY TIME:
1. Simple mathematical expressions like 2 + 2, 3 * 4, 5 / 6, 7 - 8, etc.: solve and return the answer as a LIST OF ONE RECORD [{"expr": given expression, "result": calculated answer}].
2. Set of equations like x^2 + 2x + 1 = 0, 3y + 4x = 0, 5x^2 + 6y + 7 = 12, etc.: solve for the given variables and return a COMMA SEPARATED LIST OF RECORDS, with one record per variable: [{"expr": "x", "result": 2, "assign": true}, {"expr": "y", "result": 5, "assign": true}].
3. Assigning values to variables like x = 4, y = 5, z = 6, etc.: assign values to variables and return a LIST OF RECORDS, with the variable as "expr" and the value as "result", and include the key "assign" set to true.
4. Analyzing graphical math problems, which are word problems represented in drawing form, such as cars colliding, trigonometric problems, problems on the Pythagorean theorem, adding runs from a cricket wagon wheel, etc.: pay close attention to different colors for these problems. You need to return the answer as a LIST OF ONE RECORD [{"expr": given expression, "result": calculated answer}].
5. Detecting abstract concepts that a drawing might show, like love, hate, jealousy, patriotism, or a historic reference to war, invention, discovery, quote, etc.: return the abstract concept as "result" and the explanation of the drawing as "expr" in a LIST OF ONE RECORD.
RETURN ONLY a single list of records in the exact format shown above, with no extra text, no explanation, and no markdown or code fences. Quote all keys and string values properly so the list can be parsed directly.`

// ComposeInstructions renders the full instruction text for one request.
// Deterministic: equal variable maps produce identical text (the variable
// segment is JSON with sorted keys).
func ComposeInstructions(vars VariableMap) string {
	if vars == nil {
		vars = VariableMap{}
	}
	serialized, _ := json.Marshal(vars)
	return systemPrompt +
		"\nHere is a dictionary of user-assigned variables. If the expression contains any of these variables, substitute the variable with its value from this dictionary accordingly: " +
		string(serialized) + "."
}

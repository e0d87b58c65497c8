package taxonomy

// seedDomains mirrors the digital SAT content structure: four domains
// per section.
var seedDomains = []Domain{
	{ID: "algebra", Name: "Algebra", Section: SectionMath},
	{ID: "advanced-math", Name: "Advanced Math", Section: SectionMath},
	{ID: "problem-solving-data", Name: "Problem-Solving & Data Analysis", Section: SectionMath},
	{ID: "geometry-trig", Name: "Geometry & Trigonometry", Section: SectionMath},

	{ID: "information-ideas", Name: "Information & Ideas", Section: SectionReading},
	{ID: "craft-structure", Name: "Craft & Structure", Section: SectionReading},
	{ID: "expression-ideas", Name: "Expression of Ideas", Section: SectionReading},
	{ID: "english-conventions", Name: "Standard English Conventions", Section: SectionReading},
}

var seedSkills = []Skill{
	// Algebra
	{ID: "linear-equations-one-var", Name: "Linear equations in one variable", DomainID: "algebra",
		Description: "Solve and interpret linear equations with a single unknown."},
	{ID: "linear-equations-two-var", Name: "Linear equations in two variables", DomainID: "algebra",
		Description: "Model and solve relationships between two linearly related quantities."},
	{ID: "linear-functions", Name: "Linear functions", DomainID: "algebra",
		Description: "Interpret slope and intercept; evaluate and compare linear functions."},
	{ID: "systems-linear-equations", Name: "Systems of two linear equations", DomainID: "algebra",
		Description: "Solve systems by substitution, elimination, and graph analysis."},
	{ID: "linear-inequalities", Name: "Linear inequalities", DomainID: "algebra",
		Description: "Solve one- and two-variable inequalities and interpret solution regions."},

	// Advanced Math
	{ID: "nonlinear-expressions", Name: "Equivalent expressions", DomainID: "advanced-math",
		Description: "Rewrite polynomial, radical, and rational expressions."},
	{ID: "quadratic-equations", Name: "Quadratic equations and functions", DomainID: "advanced-math",
		Description: "Solve quadratics; interpret vertex, roots, and growth."},
	{ID: "exponential-functions", Name: "Exponential functions", DomainID: "advanced-math",
		Description: "Model growth and decay; contrast with linear change."},
	{ID: "nonlinear-systems", Name: "Nonlinear equations and systems", DomainID: "advanced-math",
		Description: "Solve systems mixing linear and nonlinear equations."},

	// Problem-Solving & Data Analysis
	{ID: "ratios-rates", Name: "Ratios, rates, and proportions", DomainID: "problem-solving-data",
		Description: "Reason with ratios, unit rates, and proportional relationships."},
	{ID: "percentages", Name: "Percentages", DomainID: "problem-solving-data",
		Description: "Percent change, discount, interest, and percent-of problems."},
	{ID: "data-distributions", Name: "Distributions and center/spread", DomainID: "problem-solving-data",
		Description: "Mean, median, range, and standard deviation from displays."},
	{ID: "scatterplots", Name: "Scatterplots and models", DomainID: "problem-solving-data",
		Description: "Fit and interpret linear and nonlinear trend models."},
	{ID: "probability-inference", Name: "Probability and inference", DomainID: "problem-solving-data",
		Description: "Conditional probability, sampling, and margin of error."},

	// Geometry & Trigonometry
	{ID: "area-volume", Name: "Area and volume", DomainID: "geometry-trig",
		Description: "Compute and reason about areas, surface areas, and volumes."},
	{ID: "lines-angles-triangles", Name: "Lines, angles, and triangles", DomainID: "geometry-trig",
		Description: "Angle relationships, congruence, and similarity."},
	{ID: "right-triangle-trig", Name: "Right triangles and trigonometry", DomainID: "geometry-trig",
		Description: "Pythagorean theorem and right-triangle trig ratios."},
	{ID: "circles", Name: "Circles", DomainID: "geometry-trig",
		Description: "Arc length, sector area, and circle equations."},

	// Information & Ideas
	{ID: "central-ideas", Name: "Central ideas and details", DomainID: "information-ideas",
		Description: "Identify main ideas and supporting details in a passage."},
	{ID: "command-of-evidence", Name: "Command of evidence", DomainID: "information-ideas",
		Description: "Select textual or quantitative evidence for a claim."},
	{ID: "inferences", Name: "Inferences", DomainID: "information-ideas",
		Description: "Draw the most logical conclusion from given text."},

	// Craft & Structure
	{ID: "words-in-context", Name: "Words in context", DomainID: "craft-structure",
		Description: "Determine the meaning of high-utility words from context."},
	{ID: "text-structure-purpose", Name: "Text structure and purpose", DomainID: "craft-structure",
		Description: "Analyze why a text is organized the way it is."},
	{ID: "cross-text-connections", Name: "Cross-text connections", DomainID: "craft-structure",
		Description: "Relate viewpoints across paired passages."},

	// Expression of Ideas
	{ID: "rhetorical-synthesis", Name: "Rhetorical synthesis", DomainID: "expression-ideas",
		Description: "Combine notes to achieve a stated rhetorical aim."},
	{ID: "transitions", Name: "Transitions", DomainID: "expression-ideas",
		Description: "Choose the connector that fits the logical relationship."},

	// Standard English Conventions
	{ID: "boundaries", Name: "Sentence boundaries", DomainID: "english-conventions",
		Description: "Punctuate clause boundaries: commas, semicolons, periods."},
	{ID: "form-structure-sense", Name: "Form, structure, and sense", DomainID: "english-conventions",
		Description: "Subject-verb agreement, verb forms, pronouns, modifiers."},
}

package recommend

// Fixed per-disease advice, keyed by display disease name. Text is domain
// content written for local growers; the decision layer selects and orders
// it but does not derive it.

var leafDiseaseAdvice = map[string][]string{
	"Bacterial Spot": {
		"Spray copper solution every 7 days",
		"Remove infected leaves immediately",
		"Water soil only - avoid wet leaves",
		"Use certified disease-free seeds",
		"Rotate crops with non-tomato plants",
		"Disinfect tools after use",
	},
	"Early Blight": {
		"Apply fungicide at first sign of spots",
		"Remove lower leaves touching ground",
		"Water early morning only",
		"Use resistant tomato varieties",
		"Space plants for good air flow",
		"Clean garden debris after harvest",
	},
	"Late Blight": {
		"SPRAY URGENTLY - disease spreads fast!",
		"Remove and burn all infected plants",
		"Avoid planting in same area next year",
		"Use recommended systemic fungicides",
		"Monitor weather - thrives in cool wet conditions",
		"Destroy all plant debris after season",
	},
	"Leaf Mold": {
		"Increase spacing between plants",
		"Reduce humidity in greenhouse",
		"Apply fungicide every 10-14 days",
		"Remove moldy leaves promptly",
		"Water at base in morning hours",
		"Choose leaf mold resistant varieties",
	},
	"Septoria Leaf Spot": {
		"Spray fungicide when spots appear",
		"Remove infected leaves immediately",
		"Avoid working with wet plants",
		"Mulch around plant base",
		"Practice 2-year crop rotation",
		"Remove all plant debris in fall",
	},
	"Spider Mites": {
		"Spray water forcefully under leaves",
		"Use insecticidal soap weekly",
		"Apply neem oil every 5-7 days",
		"Keep plants well watered",
		"Introduce beneficial insects",
		"Check leaf undersides regularly",
	},
	"Target Spot": {
		"Apply broad-spectrum fungicide",
		"Remove severely infected leaves",
		"Improve air circulation",
		"Avoid overhead irrigation",
		"Practice proper crop rotation",
		"Select resistant tomato types",
	},
	"Yellow Leaf Curl Virus": {
		"Control whiteflies with yellow traps",
		"Remove infected plants immediately",
		"Use reflective mulch around plants",
		"Plant virus-free transplants only",
		"Choose virus-resistant varieties",
		"Eliminate weed hosts nearby",
	},
	"Mosaic Virus": {
		"Remove and destroy infected plants",
		"Control aphid populations",
		"Disinfect tools between plants",
		"Wash hands before handling plants",
		"Use certified virus-free seeds",
		"Remove alternative host plants",
	},
	"Healthy": {
		"Excellent! Plants are very healthy",
		"Continue regular monitoring weekly",
		"Maintain consistent watering schedule",
		"Apply balanced fertilizer monthly",
		"Ensure 6-8 hours sunlight daily",
		"Prune for good air circulation",
	},
}

var fruitDiseaseAdvice = map[string][]string{
	"Anthracnose": {
		"Apply fungicide to fruits weekly",
		"Harvest ripe fruits immediately",
		"Remove infected fruits promptly",
		"Avoid overhead watering completely",
		"Use stakes to keep fruits elevated",
		"Rotate planting location annually",
	},
	"Bacterial Spot": {
		"Spray copper bactericide weekly",
		"Remove all spotted fruits quickly",
		"Water soil only - never fruits",
		"Use certified disease-free seeds",
		"Avoid working with wet plants",
		"Sanitize garden equipment regularly",
	},
	"Blossom End Rot": {
		"Maintain even soil moisture",
		"Add calcium to soil immediately",
		"Test and adjust soil pH to 6.5-6.8",
		"Avoid excessive nitrogen fertilizer",
		"Use organic mulch consistently",
		"Apply calcium spray to developing fruits",
	},
	"Buckeye Rot": {
		"Stake plants to lift fruits",
		"Apply thick organic mulch",
		"Remove rotten fruits immediately",
		"Improve garden soil drainage",
		"Use preventive copper sprays",
		"Harvest at proper maturity",
	},
	"Catfacing": {
		"Maintain stable temperatures during bloom",
		"Reduce nitrogen fertilizer use",
		"Select smooth-fruited varieties",
		"Protect from cold during flowering",
		"Ensure adequate pollination",
		"Remove malformed fruits early",
	},
	"Fruit Cracking": {
		"Water consistently - no dry periods",
		"Apply thick mulch layer",
		"Harvest immediately after rains",
		"Choose crack-resistant varieties",
		"Balance fertilizer application",
		"Provide afternoon shade in heat",
	},
	"Gray Mold": {
		"Remove moldy fruits immediately",
		"Increase plant spacing for air flow",
		"Eliminate overhead watering",
		"Apply recommended fungicide",
		"Harvest during dry conditions only",
		"Disinfect tools between plants",
	},
	"White Mold": {
		"Remove and destroy infected plants",
		"Improve air circulation significantly",
		"Avoid working when plants are wet",
		"Apply appropriate fungicide treatment",
		"Practice deep tillage after harvest",
		"Install drip irrigation system",
	},
	"Sunscald": {
		"Maintain adequate leaf coverage",
		"Avoid heavy pruning in summer",
		"Use shade cloth during heatwaves",
		"Harvest at correct maturity stage",
		"Select varieties with good foliage",
		"Water adequately in hot weather",
	},
	"Healthy": {
		"Perfect! Fruits are very healthy",
		"Continue current care practices",
		"Harvest when fully colored",
		"Support fruit clusters properly",
		"Monitor for any changes regularly",
		"Maintain consistent watering",
	},
}

// Monitoring advice for tomato detections without a resolved diagnosis.
var leafMonitorAdvice = []string{
	"Tomato leaves detected - monitor closely",
	"Check for spots, discoloration daily",
	"Maintain proper plant spacing",
	"Water at base to keep leaves dry",
	"Use preventive measures in humid weather",
	"Remove any doubtful leaves immediately",
}

var fruitMonitorAdvice = []string{
	"Tomato fruits detected - watch closely",
	"Inspect fruits regularly for issues",
	"Harvest at peak ripeness",
	"Support heavy fruit clusters",
	"Check for normal development",
	"Maintain proper fruit care",
}

// Fixed message sets for the non-tomato categories.
var nonTomatoLeafAdvice = []string{
	"This is not a tomato plant",
	"Our system detects tomato diseases only",
	"Please photograph tomato leaves or fruits",
	"Contact agriculture office for other plants",
	"Use plant ID apps for species identification",
	"Ensure clear tomato plant photos",
}

var nonPlantAdvice = []string{
	"This image doesn't show a plant",
	"Please take photo of tomato plant parts",
	"Capture clear images of leaves or fruits",
	"Use plain background for better detection",
	"Ensure good lighting and focus",
	"Try different angles if uncertain",
}

var nonTomatoGenericAdvice = []string{
	"No tomato plant identified",
	"Specialized in tomato disease detection",
	"Upload clear tomato leaf/fruit images",
	"Verify image shows tomato plant clearly",
	"Check image quality and lighting",
	"Contact support for assistance",
}

// Good-practice items appended after disease-specific advice for tomatoes.
var tomatoGoodPractice = []string{
	"Inspect plants thoroughly every week",
	"Maintain optimal growing conditions",
	"Practice good garden sanitation",
	"Rotate crops each growing season",
	"Use resistant varieties when possible",
	"Keep detailed garden records",
}

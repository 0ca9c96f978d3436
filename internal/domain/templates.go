package domain

import "fmt"

// TemplateBundle is the fixed text material for one solution type. Bundles
// are validated exhaustively at startup so a missing template is a
// construction-time error, not a runtime lookup failure.
type TemplateBundle struct {
	Titles       []string // "%s" is the district name
	Descriptions []string // "%s" is the district name
	Rationale    string   // one static sentence explaining why the solution works
}

var templates = map[SolutionType]TemplateBundle{
	TreePlanting: {
		Titles: []string{
			"%s street tree planting campaign",
			"%s shade tree project",
			"%s urban forest initiative",
			"%s neighborhood tree drive",
		},
		Descriptions: []string{
			"Plant street trees to shade the high heat-island blocks of %s.",
			"Line the roadsides of %s with shade trees to cool pedestrian routes.",
			"Establish a pocket urban forest in %s to ease the urban heat island.",
		},
		Rationale: "Street trees lower surrounding temperatures through shading and evapotranspiration, making them the most sustainable long-term measure.",
	},
	GreenRoof: {
		Titles: []string{
			"%s rooftop greening project",
			"%s building roof garden program",
			"%s green roof installation drive",
		},
		Descriptions: []string{
			"Green the rooftops in the dense building stock of %s to cut building heat.",
			"Install roof gardens on commercial buildings in %s to reduce radiant heat.",
			"Fit green roofs across %s to soften its concrete heat island.",
		},
		Rationale: "Green roofs cut a building's heat absorption and cool the surrounding air through evapotranspiration, while also lowering its energy costs.",
	},
	CoolPavement: {
		Titles: []string{
			"%s cool pavement resurfacing",
			"%s heat-shielding road coating",
			"%s road temperature reduction project",
		},
		Descriptions: []string{
			"Apply heat-shielding pavement where asphalt surface temperatures run high in %s.",
			"Resurface the walkways of %s with cool pavement to cut radiant heat.",
			"Coat the roads of %s with heat-reflective paving material.",
		},
		Rationale: "Heat-shielding pavement raises solar reflectance and lowers road surface temperature, which is most effective where asphalt dominates.",
	},
	WaterFeature: {
		Titles: []string{
			"%s fountain installation",
			"%s water landscape project",
			"%s mist cooling zone",
		},
		Descriptions: []string{
			"Install a fountain in the busy public spaces of %s for evaporative cooling.",
			"Build a water landscape on the plaza of %s to improve comfort.",
			"Set up mist sprayers in %s as a heat-wave shelter.",
		},
		Rationale: "Water features absorb ambient heat through evaporation, providing localized cooling and a strong comfort effect for residents.",
	},
	ShadeStructure: {
		Titles: []string{
			"%s shade sail installation",
			"%s shelter structure project",
			"%s bus stop canopy upgrade",
		},
		Descriptions: []string{
			"Install shade sails at the bus stops of %s for transit riders.",
			"Put up shelter structures along the walkways of %s to block direct sun.",
			"Add canopies to the school routes of %s.",
		},
		Rationale: "Shade structures block direct sunlight for an immediate drop in perceived temperature, and are cheap and quick to install.",
	},
}

// ValidateTemplates checks that every solution type in the catalog has a
// complete template bundle. Call it at startup; a failure here means the
// build is broken, not the data.
func ValidateTemplates() error {
	for _, sol := range SolutionTypes {
		b, ok := templates[sol]
		if !ok {
			return fmt.Errorf("no template bundle for solution %q", sol)
		}
		if len(b.Titles) == 0 || len(b.Descriptions) == 0 || b.Rationale == "" {
			return fmt.Errorf("incomplete template bundle for solution %q", sol)
		}
	}
	for sol := range templates {
		if _, err := Spec(sol); err != nil {
			return fmt.Errorf("template bundle for uncataloged solution %q", sol)
		}
	}
	return nil
}

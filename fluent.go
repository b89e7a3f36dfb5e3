package fluentdoc

// DefaultVersion is the documentation version used when none is given.
// Corresponds to the 2025 R2 release.
const DefaultVersion = "v252"

const fluentBaseURL = "https://ansyshelp.ansys.com"

// DefaultCatalog returns the catalog for the Ansys Fluent manuals at the
// given version. An empty version selects DefaultVersion.
//
// URL mappings were validated against ansyshelp.ansys.com v252.
func DefaultCatalog(version string) *Catalog {
	if version == "" {
		version = DefaultVersion
	}
	return &Catalog{
		BaseURL:         fluentBaseURL,
		LandingURL:      fluentBaseURL + "/public/Views/Secured/prod_page.html?pn=Fluent&pid=Fluent&lang=en",
		SecuredPrefix:   fluentBaseURL + "/public//Views/Secured/",
		ConsentSelector: "#onetrust-accept-btn-handler",
		ContentMarker:   "/flu_",
		NotFoundRoute:   "PageNotfound",
		Version:         version,
		Guides: map[string]string{
			"theory": "flu_th/flu_th.html",
			"user":   "flu_ug/flu_ug.html",
			"tui":    "flu_tcl/flu_tcl.html",
		},
		Keys: fluentKeys(version),
	}
}

// fluentKeys builds the key table for a version. Paths are version-qualified
// so a key lookup never depends on TOC state.
func fluentKeys(version string) map[string]KnownSection {
	th := func(page string) string { return "corp/" + version + "/en/flu_th/" + page }
	ug := func(page string) string { return "corp/" + version + "/en/flu_ug/" + page }
	tcl := func(page string) string { return "corp/" + version + "/en/flu_tcl/" + page }

	theoryGuide := "Fluent Theory Guide"
	turbulence := "4. Turbulence"

	return map[string]KnownSection{
		// Theory Guide - Turbulence (Chapter 4)
		"turbulence_overview": {
			Path:       th("flu_th_turb.html"),
			Name:       "Turbulence (Chapter 4)",
			Breadcrumb: []string{theoryGuide, turbulence},
		},
		"k_epsilon": {
			Path:       th("flu_th_sec_turb_keps.html"),
			Name:       "k-ε Models Overview",
			Breadcrumb: []string{theoryGuide, turbulence, "4.3. Standard, RNG, and Realizable k-ε Models"},
		},
		"k_epsilon_standard": {
			Path: th("flu_th_sec_turb_ke_std.html"),
			Name: "Standard k-ε Model",
		},
		"k_omega": {
			Path:       th("flu_th_sec_turb_komega.html"),
			Name:       "k-ω Models Overview",
			Breadcrumb: []string{theoryGuide, turbulence, "4.4. Standard, BSL, and SST k-ω Models"},
		},
		"k_omega_standard": {
			Path: th("flu_th_sec_turb_kw_std.html"),
			Name: "Standard k-ω Model",
		},
		"k_omega_sst": {
			Path:       th("flu_th_sec_turb_kw_sst.html"),
			Name:       "SST k-ω Model",
			Breadcrumb: []string{theoryGuide, turbulence, "4.4. Standard, BSL, and SST k-ω Models", "4.4.3. SST k-ω Model"},
		},

		// Theory Guide - Heat Transfer (Chapter 5)
		"heat_transfer": {
			Path:       th("flu_th_sec_hxfer_theory.html"),
			Name:       "Heat Transfer Theory (5.2.1)",
			Breadcrumb: []string{theoryGuide, "5. Heat Transfer"},
		},
		"natural_convection": {
			Path: th("flu_th_sec_hxfer_buoy.html"),
			Name: "Natural Convection & Buoyancy (5.2.2)",
		},

		// Theory Guide - Radiation (Chapter 5.3)
		"radiation_overview": {
			Path: th("flu_th_radiation.html"),
			Name: "Radiation Modeling (Chapter 5.3)",
		},
		"radiation_do": {
			Path: th("flu_th_sec_mod_disco.html"),
			Name: "Discrete Ordinates (DO) Model",
		},
		"radiation_s2s": {
			Path: th("flu_th_sec_rad_surface2surface.html"),
			Name: "Surface-to-Surface (S2S) Model",
		},

		// Theory Guide - other chapters
		"multiphase": {
			Path:       th("flu_th_multiphase.html"),
			Name:       "Multiphase Flows (Chapter 14)",
			Breadcrumb: []string{theoryGuide, "14. Multiphase Flows"},
		},
		"battery": {
			Path:       th("flu_th_battery.html"),
			Name:       "Battery Model (Chapter 19)",
			Breadcrumb: []string{theoryGuide, "19. Battery Model"},
		},
		"solver_theory": {
			Path: th("flu_th_solver.html"),
			Name: "Solver Theory (Chapter 23)",
		},

		// User's Guide sections
		"user_turbulence": {
			Path: ug("flu_ug_turb.html"),
			Name: "User's Guide: Turbulence",
		},
		"user_boundary": {
			Path: ug("flu_ug_bcs.html"),
			Name: "User's Guide: Boundary Conditions",
		},
		"user_heat_transfer": {
			Path: ug("flu_ug_sec_hxfer.html"),
			Name: "User's Guide: Heat Transfer",
		},
		"user_radiation": {
			Path: ug("flu_ug_sec_radiation.html"),
			Name: "User's Guide: Radiation",
		},

		// TUI reference
		"tui_define": {
			Path: tcl("flu_tcl_define.html"),
			Name: "TUI: /define commands",
		},
		"tui_solve": {
			Path: tcl("flu_tcl_solve.html"),
			Name: "TUI: /solve commands",
		},
	}
}

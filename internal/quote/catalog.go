// Package quote evaluates software quotes against a fixed module catalog.
package quote

// BaseModule is a licensable module of the suite.
type BaseModule struct {
	Code             string   `json:"moduleCode"       example:"Acc"`
	Name             string   `json:"moduleName"       example:"Contabilidad"`
	Mandatory        bool     `json:"isMandatory"`
	DependsOn        []string `json:"dependsOn"`
	LicensedBy       string   `json:"licensedBy"       example:"Users"`
	IncludedLicenses int      `json:"includedLicenses" example:"2"`
}

// AddOn is an optional extension that requires some base modules.
type AddOn struct {
	Code             string   `json:"addOnCode"        example:"PLAN"`
	Name             string   `json:"addOnName"        example:"Planeacion"`
	DependsOn        []string `json:"dependsOn"`
	RequiredLicenses int      `json:"requiredLicenses" example:"50"`
	Metric           string   `json:"metric"           example:"Users"`
	Tier             string   `json:"tier"`
}

// Catalog lists what can be quoted.
type Catalog struct {
	Modules []BaseModule `json:"modules"`
	AddOns  []AddOn      `json:"addOns"`
}

// DefaultCatalog returns the enterprise suite catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Modules: []BaseModule{
			{Code: "Fin", Name: "Finanzas", Mandatory: true, DependsOn: []string{}, LicensedBy: "Users", IncludedLicenses: 5},
			{Code: "Acc", Name: "Contabilidad", DependsOn: []string{"Fin"}, LicensedBy: "Users", IncludedLicenses: 2},
			{Code: "Inv", Name: "Inventario", DependsOn: []string{"Acc"}, LicensedBy: "Users", IncludedLicenses: 1},
			{Code: "HR", Name: "Recursos Humanos", DependsOn: []string{"Fin"}, LicensedBy: "Users", IncludedLicenses: 3},
			{Code: "Payroll", Name: "Nómina", DependsOn: []string{"HR"}, LicensedBy: "Users", IncludedLicenses: 2},
		},
		AddOns: []AddOn{
			{Code: "PLAN", Name: "Planeacion", DependsOn: []string{"Acc"}, RequiredLicenses: 50, Metric: "Users"},
		},
	}
}

func (c Catalog) module(code string) (BaseModule, bool) {
	for _, m := range c.Modules {
		if m.Code == code {
			return m, true
		}
	}
	return BaseModule{}, false
}

func (c Catalog) addOn(code string) (AddOn, bool) {
	for _, a := range c.AddOns {
		if a.Code == code {
			return a, true
		}
	}
	return AddOn{}, false
}

package routepath

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
	Healthz      = "/healthz"
)

const (
	About = "/about"
)

const (
	Admin          = "/admin"
	AdminVehicles  = "/admin/vehicles"
	AdminContracts = "/admin/contracts"
	AdminReports   = "/admin/reports"
)

const (
	Locale       = "/locale"
	LocaleEvents = "/locale/events"
)

// Route names used by the route table and navigation links.
const (
	HomeName           = "home"
	AboutName          = "about"
	AdminName          = "admin"
	AdminVehiclesName  = "admin-vehicles"
	AdminContractsName = "admin-contracts"
	AdminReportsName   = "admin-reports"
	NotFoundName       = "not-found"
)

package domain

// ProductType classifies a build product by its PRODUCT_TYPE identifier.
type ProductType string

const (
	// ProductFramework is a framework bundle.
	ProductFramework ProductType = "framework"
	// ProductStaticLibrary is a static library.
	ProductStaticLibrary ProductType = "static library"
	// ProductDynamicLibrary is a dynamic library.
	ProductDynamicLibrary ProductType = "dynamic library"
	// ProductTestBundle is a unit or UI test bundle.
	ProductTestBundle ProductType = "test bundle"
	// ProductAppExtension is an application extension.
	ProductAppExtension ProductType = "app extension"
	// ProductApplication is an application bundle.
	ProductApplication ProductType = "application"
	// ProductCommandLineTool is a command line executable.
	ProductCommandLineTool ProductType = "tool"
)

var productTypes = map[string]ProductType{
	"com.apple.product-type.framework":         ProductFramework,
	"com.apple.product-type.library.static":    ProductStaticLibrary,
	"com.apple.product-type.library.dynamic":   ProductDynamicLibrary,
	"com.apple.product-type.bundle.unit-test":  ProductTestBundle,
	"com.apple.product-type.bundle.ui-testing": ProductTestBundle,
	"com.apple.product-type.app-extension":     ProductAppExtension,
	"com.apple.product-type.application":       ProductApplication,
	"com.apple.product-type.tool":              ProductCommandLineTool,
}

// MachOType classifies the binary by its MACH_O_TYPE identifier.
type MachOType string

const (
	// MachOExecutable is a main executable (mh_execute).
	MachOExecutable MachOType = "executable"
	// MachODylib is a dynamically linked shared library (mh_dylib).
	MachODylib MachOType = "dylib"
	// MachOBundle is a loadable bundle (mh_bundle).
	MachOBundle MachOType = "bundle"
	// MachOObject is a relocatable object file (mh_object).
	MachOObject MachOType = "object"
	// MachOStaticLib is a static library archive (staticlib).
	MachOStaticLib MachOType = "staticlib"
)

var machOTypes = map[string]MachOType{
	"mh_execute": MachOExecutable,
	"mh_dylib":   MachODylib,
	"mh_bundle":  MachOBundle,
	"mh_object":  MachOObject,
	"staticlib":  MachOStaticLib,
}

// FrameworkType classifies a framework product by how it links.
type FrameworkType string

const (
	// FrameworkNone means the product is not a framework. It is a valid
	// classification result, distinct from a lookup failure.
	FrameworkNone FrameworkType = ""
	// FrameworkDynamic is a dynamically linked framework.
	FrameworkDynamic FrameworkType = "dynamic"
	// FrameworkStatic is a statically linked framework.
	FrameworkStatic FrameworkType = "static"
)

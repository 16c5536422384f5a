package domain

import (
	"maps"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Record holds the build settings xcodebuild reported for a single target,
// together with the arguments and logical action the load was issued for.
//
// A Record is immutable once constructed: the parser copies its accumulator
// into NewRecord and the query layer never writes to the settings map.
type Record struct {
	// Target is the target name the settings belong to. Never empty.
	Target string
	// Settings is the flat key-value configuration state for the target.
	Settings map[string]string
	// Arguments is the caller-supplied project context.
	Arguments Arguments
	// Action is the logical action tag. Metadata only; the invocation that
	// produced the settings always uses the archive workaround action.
	Action Action
}

// NewRecord constructs a Record, copying the settings map so later writes to
// the source map cannot leak into the record.
func NewRecord(target string, settings map[string]string, args Arguments, action Action) Record {
	copied := make(map[string]string, len(settings))
	maps.Copy(copied, settings)
	return Record{
		Target:    target,
		Settings:  copied,
		Arguments: args,
		Action:    action,
	}
}

// Equal reports whether two records carry identical settings for the same
// target and action.
func (r Record) Equal(other Record) bool {
	return r.Target == other.Target &&
		r.Action == other.Action &&
		maps.Equal(r.Settings, other.Settings)
}

// Get looks up a single build setting.
func (r Record) Get(key string) (string, error) {
	value, ok := r.Settings[key]
	if !ok {
		return "", zerr.With(zerr.With(zerr.Wrap(ErrMissingSetting, "setting not present"), "key", key), "target", r.Target)
	}
	return value, nil
}

// SupportedPlatformNames returns the set of platform names the target can be
// built for. It prefers SUPPORTED_PLATFORMS, falls back to PLATFORM_NAME, and
// returns an empty set when both are absent. This query never fails.
func (r Record) SupportedPlatformNames() []string {
	if value, err := r.Get("SUPPORTED_PLATFORMS"); err == nil {
		return uniqueFields(value)
	}
	if value, err := r.Get("PLATFORM_NAME"); err == nil {
		return []string{value}
	}
	return nil
}

// Architectures returns the set of architectures from ARCHS.
func (r Record) Architectures() ([]string, error) {
	value, err := r.Get("ARCHS")
	if err != nil {
		return nil, err
	}
	return uniqueFields(value), nil
}

// ProductType maps PRODUCT_TYPE through the known product-type identifiers.
func (r Record) ProductType() (ProductType, error) {
	raw, err := r.Get("PRODUCT_TYPE")
	if err != nil {
		return "", err
	}
	productType, ok := productTypes[raw]
	if !ok {
		return "", zerr.With(zerr.With(zerr.Wrap(ErrUnrecognizedSetting, "unknown product type"), "key", "PRODUCT_TYPE"), "value", raw)
	}
	return productType, nil
}

// MachOType maps MACH_O_TYPE through the known Mach-O type identifiers.
func (r Record) MachOType() (MachOType, error) {
	raw, err := r.Get("MACH_O_TYPE")
	if err != nil {
		return "", err
	}
	machOType, ok := machOTypes[raw]
	if !ok {
		return "", zerr.With(zerr.With(zerr.Wrap(ErrUnrecognizedSetting, "unknown Mach-O type"), "key", "MACH_O_TYPE"), "value", raw)
	}
	return machOType, nil
}

// FrameworkType classifies the build product from its product type and Mach-O
// type. FrameworkNone is a valid non-error result for recognized combinations
// that are not frameworks.
func (r Record) FrameworkType() (FrameworkType, error) {
	productType, err := r.ProductType()
	if err != nil {
		return FrameworkNone, err
	}
	machOType, err := r.MachOType()
	if err != nil {
		return FrameworkNone, err
	}
	if productType == ProductFramework {
		switch machOType {
		case MachODylib:
			return FrameworkDynamic, nil
		case MachOStaticLib:
			return FrameworkStatic, nil
		}
	}
	return FrameworkNone, nil
}

// ProductsDirectory resolves the directory build products land in. For the
// archive action the products live under OBJROOT in the archive-intermediates
// layout; for every other action BUILT_PRODUCTS_DIR is used directly.
func (r Record) ProductsDirectory() (string, error) {
	if r.Action == ActionArchive {
		objRoot, err := r.Get("OBJROOT")
		if err != nil {
			return "", err
		}
		relative, err := r.archiveIntermediatesPath()
		if err != nil {
			return "", err
		}
		return filepath.Join(objRoot, relative), nil
	}
	return r.Get("BUILT_PRODUCTS_DIR")
}

// archiveIntermediatesPath derives the relative products path used by the
// archive action.
//
// The identifying component is TARGET_NAME, falling back to the scheme from
// the arguments context. The suffix is BUILT_PRODUCTS_DIR stripped of the
// BUILD_DIR prefix when it has that prefix, otherwise CONFIGURATION plus
// EFFECTIVE_PLATFORM_NAME (the latter defaulting to empty).
func (r Record) archiveIntermediatesPath() (string, error) {
	name, err := r.Get("TARGET_NAME")
	if err != nil {
		if r.Arguments.Scheme == "" {
			return "", err
		}
		name = r.Arguments.Scheme
	}

	suffix, found := "", false
	if builtProductsDir, bpErr := r.Get("BUILT_PRODUCTS_DIR"); bpErr == nil && builtProductsDir != "" {
		if buildDir, bdErr := r.Get("BUILD_DIR"); bdErr == nil && strings.HasPrefix(builtProductsDir, buildDir) {
			suffix = strings.TrimPrefix(builtProductsDir, buildDir)
			found = true
		}
	}
	if !found {
		configuration, confErr := r.Get("CONFIGURATION")
		if confErr != nil {
			return "", confErr
		}
		effectivePlatform, _ := r.Get("EFFECTIVE_PLATFORM_NAME")
		suffix = configuration + effectivePlatform
	}

	return filepath.Join("ArchiveIntermediates", name, "BuildProductsPath", suffix), nil
}

// ExecutablePath resolves the path of the built executable inside the
// products directory.
func (r Record) ExecutablePath() (string, error) {
	return r.pathInProductsDirectory("EXECUTABLE_PATH")
}

// WrapperPath resolves the path of the built product wrapper (for example the
// .framework or .app bundle) inside the products directory.
func (r Record) WrapperPath() (string, error) {
	return r.pathInProductsDirectory("WRAPPER_NAME")
}

// DebugSymbolsPath resolves the path of the dSYM bundle emitted next to the
// build products.
func (r Record) DebugSymbolsPath() (string, error) {
	return r.pathInProductsDirectory("DWARF_DSYM_FILE_NAME")
}

// InfoPlistPath resolves the path of the product's Info.plist.
func (r Record) InfoPlistPath() (string, error) {
	return r.pathInProductsDirectory("INFOPLIST_PATH")
}

func (r Record) pathInProductsDirectory(key string) (string, error) {
	directory, err := r.ProductsDirectory()
	if err != nil {
		return "", err
	}
	component, err := r.Get(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(directory, component), nil
}

// WrapperName returns the file name of the product wrapper.
func (r Record) WrapperName() (string, error) {
	return r.Get("WRAPPER_NAME")
}

// ProductName returns PRODUCT_NAME.
func (r Record) ProductName() (string, error) {
	return r.Get("PRODUCT_NAME")
}

// SwiftVersion returns SWIFT_VERSION.
func (r Record) SwiftVersion() (string, error) {
	return r.Get("SWIFT_VERSION")
}

// RelativeModulesPath returns the bundle-relative directory Swift modules are
// placed in, or the empty string when the record carries no contents folder.
func (r Record) RelativeModulesPath() string {
	if contentsFolder, err := r.Get("CONTENTS_FOLDER_PATH"); err == nil {
		return filepath.Join(contentsFolder, "Modules")
	}
	return ""
}

// PlatformOS returns the OS token of the target triple, with any trailing
// numeric version suffix stripped (e.g. "ios13.0" becomes "ios"). When
// LLVM_TARGET_TRIPLE_OS_VERSION is absent it falls back to
// SWIFT_PLATFORM_TARGET_PREFIX.
func (r Record) PlatformOS() (string, error) {
	value, err := r.Get("LLVM_TARGET_TRIPLE_OS_VERSION")
	if err != nil {
		return r.Get("SWIFT_PLATFORM_TARGET_PREFIX")
	}
	return strings.TrimRight(value, "0123456789."), nil
}

// PlatformVariant returns the target triple suffix (e.g. "simulator") with a
// single leading dash stripped.
func (r Record) PlatformVariant() (string, error) {
	value, err := r.Get("LLVM_TARGET_TRIPLE_SUFFIX")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(value, "-"), nil
}

// BitcodeEnabled reports whether ENABLE_BITCODE is the literal "YES". A
// missing key is a failure, never silently false.
func (r Record) BitcodeEnabled() (bool, error) {
	return r.flag("ENABLE_BITCODE")
}

// AdHocCodeSigningAllowed reports whether AD_HOC_CODE_SIGNING_ALLOWED is the
// literal "YES".
func (r Record) AdHocCodeSigningAllowed() (bool, error) {
	return r.flag("AD_HOC_CODE_SIGNING_ALLOWED")
}

// OnlyActiveArchitecture reports whether ONLY_ACTIVE_ARCH is the literal "YES".
func (r Record) OnlyActiveArchitecture() (bool, error) {
	return r.flag("ONLY_ACTIVE_ARCH")
}

func (r Record) flag(key string) (bool, error) {
	value, err := r.Get(key)
	if err != nil {
		return false, err
	}
	return value == "YES", nil
}

// uniqueFields splits a space-separated value into its unique tokens,
// preserving first-occurrence order.
func uniqueFields(value string) []string {
	fields := strings.Fields(value)
	seen := make(map[string]bool, len(fields))
	unique := fields[:0]
	for _, field := range fields {
		if !seen[field] {
			seen[field] = true
			unique = append(unique, field)
		}
	}
	return unique
}

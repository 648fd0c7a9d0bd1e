package tasks

// Plan is the Resonance development plan, one entry per ticket to open.
var Plan = []Task{
	// Phase 0: Project Setup
	{
		ID:     "TASK-001",
		Title:  "Initialize Tauri Project",
		Labels: []string{"phase-0-setup", "P0-critical", "ready", "build"},
		Description: "Initialize the base Tauri project with React TypeScript template.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Tauri project initialized with React TypeScript\n" +
			"- [ ] Basic project structure created\n" +
			"- [ ] Development server runs successfully\n" +
			"- [ ] Basic window opens with React app\n" +
			"\n" +
			"## Commands\n" +
			"```bash\n" +
			"npm create tauri-app@latest resonance -- --template react-ts\n" +
			"cd resonance\n" +
			"bun install  # or npm install\n" +
			"```\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Create initial smoke tests to verify app launches\n" +
			"- Test that React component renders\n" +
			"- Verify Tauri window creation",
	},
	{
		ID:           "TASK-002",
		Title:        "Copy Claudia UI Components",
		Labels:       []string{"phase-0-setup", "P0-critical", "frontend"},
		Dependencies: []string{"TASK-001"},
		Description: "Copy necessary UI components from Claudia project maintaining directory structure.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] UI components copied to `src/components/ui/`\n" +
			"- [ ] Component imports updated\n" +
			"- [ ] Basic UI renders without errors\n" +
			"- [ ] shadcn/ui dependencies added\n" +
			"\n" +
			"## Components to Copy\n" +
			"- Card, Button, Slider, Input\n" +
			"- Label, Tabs, Dialog, Alert\n" +
			"- Dropdown, Tooltip, Progress\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Write tests for each component before copying\n" +
			"- Verify component renders correctly\n" +
			"- Test component props and interactions",
	},
	{
		ID:           "TASK-003",
		Title:        "Configure Tailwind CSS & shadcn/ui",
		Labels:       []string{"phase-0-setup", "P0-critical", "frontend"},
		Dependencies: []string{"TASK-001"},
		Description: "Set up Tailwind CSS and shadcn/ui following Claudia patterns.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Tailwind CSS configured\n" +
			"- [ ] shadcn/ui components working\n" +
			"- [ ] Consistent theme applied\n" +
			"- [ ] Dark mode support configured\n" +
			"- [ ] CSS variables defined\n" +
			"\n" +
			"## Configuration\n" +
			"- Copy Tailwind config from Claudia\n" +
			"- Set up CSS variables\n" +
			"- Configure PostCSS\n" +
			"- Add base styles\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Test theme switching functionality\n" +
			"- Verify CSS classes apply correctly\n" +
			"- Test responsive behavior",
	},
	{
		ID:           "TASK-004",
		Title:        "Setup Build Tools",
		Labels:       []string{"phase-0-setup", "P0-critical", "build"},
		Dependencies: []string{"TASK-003"},
		Description: "Configure Vite, TypeScript, and build process.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Vite configured for React\n" +
			"- [ ] TypeScript strict mode enabled\n" +
			"- [ ] Path aliases configured\n" +
			"- [ ] Build process working\n" +
			"- [ ] Hot module replacement working\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Test build output structure\n" +
			"- Verify TypeScript compilation\n" +
			"- Test path alias resolution",
	},
	{
		ID:           "TASK-005",
		Title:        "Setup Testing Framework",
		Labels:       []string{"phase-0-setup", "P0-critical", "testing"},
		Dependencies: []string{"TASK-004"},
		Description: "Configure Vitest and React Testing Library for TDD workflow.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Vitest configured\n" +
			"- [ ] React Testing Library installed\n" +
			"- [ ] Rust test structure set up\n" +
			"- [ ] Mock Tauri APIs configured\n" +
			"- [ ] Test scripts in package.json\n" +
			"- [ ] Coverage reporting configured\n" +
			"- [ ] Example tests passing\n" +
			"\n" +
			"## Setup Commands\n" +
			"```bash\n" +
			"bun add -D vitest @testing-library/react @testing-library/user-event @testing-library/jest-dom\n" +
			"bun add -D @vitest/coverage-v8 jsdom\n" +
			"bun add -D @tauri-apps/api\n" +
			"```",
	},
	{
		ID:           "TASK-006",
		Title:        "Setup Husky Pre-commit Hooks",
		Labels:       []string{"phase-0-setup", "P0-critical", "build"},
		Dependencies: []string{"TASK-005"},
		Description: "Configure pre-commit hooks for code quality.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Husky installed and configured\n" +
			"- [ ] Pre-commit hook configured\n" +
			"- [ ] dprint formatting on commit\n" +
			"- [ ] ESLint checking on commit\n" +
			"- [ ] TypeScript type checking on commit\n" +
			"- [ ] Tests run on commit (when available)\n" +
			"- [ ] Commit fails if any checks fail\n" +
			"- [ ] Rust formatting and clippy checks included\n" +
			"\n" +
			"## Setup Commands\n" +
			"```bash\n" +
			"bun add -D husky lint-staged dprint\n" +
			"bunx husky init\n" +
			"echo \"bunx lint-staged\" > .husky/pre-commit\n" +
			"```",
	},
	// Phase 1: FFI Integration
	{
		ID:           "TASK-007",
		Title:        "Clone RyzenAdj as Submodule",
		Labels:       []string{"phase-1-ffi", "P1-high", "ffi"},
		Dependencies: []string{"TASK-006"},
		Description: "Add RyzenAdj as git submodule and build the library.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] RyzenAdj added as submodule in `lib/`\n" +
			"- [ ] Library builds successfully\n" +
			"- [ ] Headers accessible for FFI\n" +
			"- [ ] Build script created\n" +
			"\n" +
			"## Commands\n" +
			"```bash\n" +
			"git submodule add https://github.com/FlyGoat/RyzenAdj.git lib/RyzenAdj\n" +
			"cd lib/RyzenAdj\n" +
			"mkdir build && cd build\n" +
			"cmake ..\n" +
			"make\n" +
			"```",
	},
	{
		ID:           "TASK-008",
		Title:        "Create Rust FFI Bindings with Tests",
		Labels:       []string{"phase-1-ffi", "P1-high", "backend", "ffi"},
		Dependencies: []string{"TASK-007"},
		Description: "Create Rust FFI bindings for RyzenAdj C library using TDD approach.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Write failing tests for FFI wrapper functions\n" +
			"- [ ] FFI bindings created in `src-tauri/src/ryzenadj/mod.rs`\n" +
			"- [ ] All necessary functions declared\n" +
			"- [ ] Types properly mapped\n" +
			"- [ ] Linking configured in build.rs\n" +
			"- [ ] Tests passing for all bindings\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Write tests for each FFI function\n" +
			"- Mock C library responses\n" +
			"- Test error handling\n" +
			"- Verify memory safety",
	},
	{
		ID:           "TASK-009",
		Title:        "Implement Safe Wrappers with Tests",
		Labels:       []string{"phase-1-ffi", "P1-high", "backend", "ffi"},
		Dependencies: []string{"TASK-008"},
		Description: "Create safe Rust wrappers around unsafe FFI calls.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Write tests for safe wrapper API\n" +
			"- [ ] Safe wrapper struct created\n" +
			"- [ ] All unsafe operations contained\n" +
			"- [ ] Proper error handling\n" +
			"- [ ] Thread safety guaranteed\n" +
			"- [ ] Memory management handled\n" +
			"- [ ] All tests passing\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Test null pointer handling\n" +
			"- Test concurrent access\n" +
			"- Verify Drop implementation\n" +
			"- Test error propagation",
	},
	{
		ID:           "TASK-010",
		Title:        "Build Native Library Integration",
		Labels:       []string{"phase-1-ffi", "P1-high", "backend", "build"},
		Dependencies: []string{"TASK-008"},
		Description: "Configure build.rs to link RyzenAdj library.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] build.rs configured\n" +
			"- [ ] Library paths set correctly\n" +
			"- [ ] Static/dynamic linking working\n" +
			"- [ ] Cross-platform build support\n" +
			"- [ ] CI build passing",
	},
	{
		ID:           "TASK-011",
		Title:        "Create Tauri Commands with Tests",
		Labels:       []string{"phase-1-ffi", "P1-high", "backend"},
		Dependencies: []string{"TASK-010"},
		Description: "Implement Tauri commands for frontend-backend communication using TDD.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Write tests for each command first\n" +
			"- [ ] Commands created in `src-tauri/src/commands/`\n" +
			"- [ ] Error handling implemented and tested\n" +
			"- [ ] Type definitions exported\n" +
			"- [ ] Commands registered in main.rs\n" +
			"- [ ] All command tests passing\n" +
			"\n" +
			"## Commands to Implement\n" +
			"- get_power_metrics\n" +
			"- set_power_limits\n" +
			"- get_system_info\n" +
			"- check_privileges\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Mock RyzenAdj responses\n" +
			"- Test error conditions\n" +
			"- Verify serialization\n" +
			"- Test concurrent calls",
	},
	// Phase 2: Core Features
	{
		ID:           "TASK-012",
		Title:        "Power Monitoring Dashboard with Tests",
		Labels:       []string{"phase-2-core", "P1-high", "frontend"},
		Dependencies: []string{"TASK-002", "TASK-011"},
		Description: "Create power monitoring dashboard using TDD.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Write component tests first\n" +
			"- [ ] Dashboard component created\n" +
			"- [ ] Real-time power display working\n" +
			"- [ ] Chart rendering correctly\n" +
			"- [ ] Responsive layout\n" +
			"- [ ] All tests passing\n" +
			"- [ ] 80%+ test coverage\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Test component renders\n" +
			"- Test data updates\n" +
			"- Mock Tauri commands\n" +
			"- Test chart interactions\n" +
			"- Verify responsive behavior",
	},
	{
		ID:           "TASK-013",
		Title:        "Power Control Sliders with Tests",
		Labels:       []string{"phase-2-core", "P1-high", "frontend"},
		Dependencies: []string{"TASK-002", "TASK-011"},
		Description: "Implement power limit controls using TDD.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Write slider component tests\n" +
			"- [ ] Slider components created\n" +
			"- [ ] Debounced updates working\n" +
			"- [ ] Visual feedback on changes\n" +
			"- [ ] Validation implemented\n" +
			"- [ ] All tests passing\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Test slider interactions\n" +
			"- Test debounce behavior\n" +
			"- Test validation logic\n" +
			"- Mock command calls",
	},
	{
		ID:           "TASK-014",
		Title:        "Temperature Display with Tests",
		Labels:       []string{"phase-2-core", "P2-medium", "frontend"},
		Dependencies: []string{"TASK-002", "TASK-011"},
		Description: "Create temperature monitoring display using TDD.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Write display tests first\n" +
			"- [ ] Temperature component created\n" +
			"- [ ] Real-time updates working\n" +
			"- [ ] Color coding for ranges\n" +
			"- [ ] Historical chart option\n" +
			"- [ ] All tests passing",
	},
	{
		ID:           "TASK-015",
		Title:        "State Management Setup with Tests",
		Labels:       []string{"phase-2-core", "P1-high", "frontend"},
		Dependencies: []string{"TASK-004"},
		Description: "Configure Zustand state management with tests.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Write store tests first\n" +
			"- [ ] Zustand store created\n" +
			"- [ ] Actions implemented\n" +
			"- [ ] Selectors optimized\n" +
			"- [ ] Persistence configured\n" +
			"- [ ] All tests passing\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Test state updates\n" +
			"- Test async actions\n" +
			"- Test persistence\n" +
			"- Verify subscriptions",
	},
	{
		ID:           "TASK-016",
		Title:        "Profile Management with Tests",
		Labels:       []string{"phase-2-core", "P2-medium", "frontend"},
		Dependencies: []string{"TASK-013", "TASK-015"},
		Description: "Implement profile save/load functionality using TDD.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Write profile tests first\n" +
			"- [ ] Profile CRUD operations\n" +
			"- [ ] Quick presets available\n" +
			"- [ ] Import/export working\n" +
			"- [ ] Profile switching smooth\n" +
			"- [ ] All tests passing\n" +
			"\n" +
			"## TDD Approach\n" +
			"- Test CRUD operations\n" +
			"- Test profile validation\n" +
			"- Test preset values\n" +
			"- Mock file operations",
	},
	// Phase 3: Platform Features
	{
		ID:           "TASK-017",
		Title:        "Privilege Elevation Check",
		Labels:       []string{"phase-3-platform", "P1-high", "backend"},
		Dependencies: []string{"TASK-011"},
		Description: "Implement admin/root privilege checking.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Windows admin check working\n" +
			"- [ ] Linux root check working\n" +
			"- [ ] Clear error messages\n" +
			"- [ ] Elevation prompt option\n" +
			"- [ ] Tests for both platforms",
	},
	{
		ID:           "TASK-018",
		Title:        "Platform-Specific Handlers",
		Labels:       []string{"phase-3-platform", "P1-high", "backend"},
		Dependencies: []string{"TASK-017"},
		Description: "Create platform-specific implementations.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Windows-specific code paths\n" +
			"- [ ] Linux-specific code paths\n" +
			"- [ ] macOS compatibility layer\n" +
			"- [ ] Platform detection working\n" +
			"- [ ] Tests for each platform",
	},
	{
		ID:           "TASK-019",
		Title:        "Error Handling UI",
		Labels:       []string{"phase-3-platform", "P2-medium", "frontend"},
		Dependencies: []string{"TASK-017"},
		Description: "Create comprehensive error handling UI.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Error boundary implemented\n" +
			"- [ ] User-friendly messages\n" +
			"- [ ] Recovery options shown\n" +
			"- [ ] Error logging configured\n" +
			"- [ ] Tests for error states",
	},
	{
		ID:           "TASK-020",
		Title:        "System Information Display",
		Labels:       []string{"phase-3-platform", "P3-low", "frontend"},
		Dependencies: []string{"TASK-011"},
		Description: "Show system and CPU information.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] CPU model displayed\n" +
			"- [ ] Supported features shown\n" +
			"- [ ] Driver version info\n" +
			"- [ ] Platform details visible\n" +
			"- [ ] Tests for display logic",
	},
	// Phase 4: Testing & Validation
	{
		ID:           "TASK-021",
		Title:        "Integration Tests - Full Stack",
		Labels:       []string{"phase-4-testing", "P1-high", "testing"},
		Dependencies: []string{"TASK-016", "TASK-018"},
		Description: "Create comprehensive integration tests.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] End-to-end test suite\n" +
			"- [ ] Profile workflow tests\n" +
			"- [ ] Power adjustment tests\n" +
			"- [ ] Error scenario tests\n" +
			"- [ ] 70%+ integration coverage",
	},
	{
		ID:           "TASK-022",
		Title:        "Performance Testing",
		Labels:       []string{"phase-4-testing", "P2-medium", "testing"},
		Dependencies: []string{"TASK-012", "TASK-013"},
		Description: "Implement performance benchmarks and tests.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Memory leak tests\n" +
			"- [ ] CPU usage benchmarks\n" +
			"- [ ] Render performance tests\n" +
			"- [ ] Command latency tests\n" +
			"- [ ] Performance baseline set",
	},
	{
		ID:           "TASK-023",
		Title:        "Hardware Compatibility Tests",
		Labels:       []string{"phase-4-testing", "P2-medium", "testing"},
		Dependencies: []string{"TASK-019"},
		Description: "Test on various AMD Ryzen CPUs.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Test matrix created\n" +
			"- [ ] 5000 series tested\n" +
			"- [ ] 6000 series tested\n" +
			"- [ ] 7000 series tested\n" +
			"- [ ] Compatibility report",
	},
	// Phase 5: Polish & Advanced
	{
		ID:           "TASK-024",
		Title:        "System Tray Integration",
		Labels:       []string{"phase-5-polish", "P3-low", "frontend"},
		Dependencies: []string{"TASK-015", "TASK-017"},
		Description: "Add system tray functionality.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Tray icon working\n" +
			"- [ ] Quick controls menu\n" +
			"- [ ] Profile switching\n" +
			"- [ ] Minimize to tray\n" +
			"- [ ] Tests for tray logic",
	},
	{
		ID:           "TASK-025",
		Title:        "Auto-start Capability",
		Labels:       []string{"phase-5-polish", "P3-low", "backend"},
		Dependencies: []string{"TASK-024"},
		Description: "Implement auto-start on system boot.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] Windows auto-start\n" +
			"- [ ] Linux auto-start\n" +
			"- [ ] User preference saved\n" +
			"- [ ] Clean uninstall\n" +
			"- [ ] Tests for both platforms",
	},
	{
		ID:           "TASK-026",
		Title:        "Export Metrics Feature",
		Labels:       []string{"phase-5-polish", "P3-low", "frontend"},
		Dependencies: []string{"TASK-012"},
		Description: "Add metrics export functionality.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] CSV export working\n" +
			"- [ ] JSON export option\n" +
			"- [ ] Time range selection\n" +
			"- [ ] File save dialog\n" +
			"- [ ] Export tests",
	},
	{
		ID:           "TASK-027",
		Title:        "Multi-language Support",
		Labels:       []string{"phase-5-polish", "P3-low", "frontend"},
		Dependencies: []string{"TASK-003"},
		Description: "Implement internationalization.\n" +
			"\n" +
			"## Success Criteria\n" +
			"- [ ] i18n framework setup\n" +
			"- [ ] English strings extracted\n" +
			"- [ ] Language switching works\n" +
			"- [ ] RTL support considered\n" +
			"- [ ] Translation tests",
	},
}

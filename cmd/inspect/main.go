package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/javabin/jclass"
	"github.com/javabin/jclass/classfile"
)

func main() {
	var (
		classPath   = flag.String("class", "", "Path to .class file")
		methodName  = flag.String("method", "", "Show details for one method")
		list        = flag.Bool("list", false, "List members and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *classPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -class <file.class> [-method name]")
		fmt.Fprintln(os.Stderr, "       inspect -class <file.class> -list")
		fmt.Fprintln(os.Stderr, "       inspect -class <file.class> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		classfile.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*classPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := inspect(*classPath, *methodName, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inspect(classPath, methodName string, listOnly bool) error {
	cf, err := jclass.Open(classPath)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	name, err := cf.ClassName()
	if err != nil {
		return fmt.Errorf("class name: %w", err)
	}

	fmt.Printf("Class:   %s\n", name)
	fmt.Printf("Version: %d.%d (%s)\n", cf.MajorVersion, cf.MinorVersion, classfile.JavaRelease(cf.MajorVersion))
	fmt.Printf("Flags:   %s\n", strings.Join(classfile.ClassFlagNames(cf.AccessFlags), " "))

	super, err := cf.SuperClassName()
	if err != nil {
		return fmt.Errorf("super class name: %w", err)
	}
	if super != "" {
		fmt.Printf("Super:   %s\n", super)
	}

	ifaces, err := cf.InterfaceNames()
	if err != nil {
		return fmt.Errorf("interface names: %w", err)
	}
	if len(ifaces) > 0 {
		fmt.Printf("Implements: %s\n", strings.Join(ifaces, ", "))
	}

	fmt.Printf("Constant pool: %d slots\n", cf.ConstantPool.Len())

	if methodName != "" {
		m, ok := cf.MethodByName(methodName)
		if !ok {
			return fmt.Errorf("no method named %q", methodName)
		}
		printMethod(m)
		return nil
	}

	if len(cf.Fields) > 0 {
		fmt.Printf("\nFields:\n")
		for i := range cf.Fields {
			f := &cf.Fields[i]
			fmt.Printf("  %s %s\n", f.Name.Value, f.Descriptor.Value)
		}
	}

	fmt.Printf("\nMethods:\n")
	for i := range cf.Methods {
		m := &cf.Methods[i]
		flags := strings.Join(classfile.MethodFlagNames(m.AccessFlags), " ")
		fmt.Printf("  %s %s%s\n", flags, m.Name.Value, m.Descriptor.Value)
	}

	if listOnly {
		return nil
	}

	fmt.Printf("\nClass attributes:\n")
	for _, attr := range cf.Attributes {
		fmt.Printf("  %s\n", attr.AttributeName())
	}
	return nil
}

func printMethod(m *classfile.Method) {
	fmt.Printf("\nMethod %s%s\n", m.Name.Value, m.Descriptor.Value)
	fmt.Printf("  flags: %s\n", strings.Join(classfile.MethodFlagNames(m.AccessFlags), " "))

	code := m.Code()
	if code == nil {
		fmt.Printf("  no Code attribute\n")
		return
	}
	fmt.Printf("  max_stack:  %d\n", code.MaxStack)
	fmt.Printf("  max_locals: %d\n", code.MaxLocals)
	fmt.Printf("  code:       %d bytes\n", len(code.Code))
	for _, h := range code.ExceptionTable {
		catch := "any"
		if !h.CatchAll() {
			catch = fmt.Sprintf("#%d", h.CatchType)
		}
		fmt.Printf("  handler:    [%d, %d) -> %d catch %s\n", h.StartPC, h.EndPC, h.HandlerPC, catch)
	}
	for _, attr := range code.Attributes {
		fmt.Printf("  attribute:  %s\n", attr.AttributeName())
	}
}

// Package tfs renders analysis results as Table-File-System text, the
// self-describing tabular format of accelerator optics tooling:
//
//	@ Q1                 %le  0.28
//	@ OptimisticErrorBars %s  "False"
//	* NAME      NAME2     S        PHASEX   ...
//	$ %s        %s        %le      %le      ...
//	  "BPM.A"   "BPM.B"   12.5000  0.2513   ...
//
// "@" lines are header descriptors, "*" the column names, "$" the
// column format types, and every following line one data row.
//
// Table implements the engine's ResultFile sink contract (SetHeader /
// SetColumns / AppendRow) and serializes on demand via WriteTo; it is a
// pure formatter — parsing TFS input is out of scope.
package tfs

// Package utils provides small helpers shared across logsrv-assist.
//
// Path resolution:
//
//	absPath := utils.GetAbsolutePath("properties.yaml", "/etc/logsrv-assist")
//	// Returns: /etc/logsrv-assist/properties.yaml
//
// Closing files without losing the error:
//
//	f, err := os.Create(path)
//	if err != nil {
//	    return err
//	}
//	defer utils.CloseOrWarn(f)
package utils

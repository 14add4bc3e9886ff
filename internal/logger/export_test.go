package logger

var NewLoggerWithWriter = newLogger
